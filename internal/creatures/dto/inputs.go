package dto

// ListCreaturesInput represents the query parameters of the creature list
type ListCreaturesInput struct {
	Filter string `query:"filter" maxLength:"100" doc:"Case-sensitive substring matched against creature name or faction" example:"rif"`
	Lang   string `query:"lang" default:"en" maxLength:"35" doc:"Locale code of the catalog" example:"en"`
}

// ListLocalesInput represents the request for the locale list (no parameters)
type ListLocalesInput struct{}

// StatusInput represents the request for module status (no parameters)
type StatusInput struct{}
