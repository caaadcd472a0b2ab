package dto

import "oldenera-wiki/pkg/catalog"

// CreaturesOutput represents the creature list response
type CreaturesOutput struct {
	Body []catalog.Creature `json:"body" doc:"Creatures in catalog order"`
}

// LocalesOutput represents the locale list response
type LocalesOutput struct {
	Body []string `json:"body" doc:"Locale codes with a creature catalog"`
}

// StatusOutput represents the module status response
type StatusOutput struct {
	Body StatusResponse `json:"body" doc:"Module status"`
}

// StatusResponse contains the module health status
type StatusResponse struct {
	Module     string `json:"module" doc:"Module name"`
	Status     string `json:"status" enum:"healthy,unhealthy,degraded" doc:"Module health status"`
	StoreState string `json:"store_state" enum:"uninitialized,initializing,ready,failed" doc:"Data store initialization state"`
	Cache      string `json:"cache" doc:"Catalog cache backend"`
	Message    string `json:"message,omitempty" doc:"Optional status message"`
}
