package routes

import (
	"context"
	"errors"
	"net/http"

	"oldenera-wiki/internal/creatures/dto"
	"oldenera-wiki/internal/creatures/services"
	"oldenera-wiki/pkg/catalog"

	"github.com/danielgtaylor/huma/v2"
)

// Routes handles creature route definitions
type Routes struct {
	service *services.Service
}

// NewRoutes creates a new routes instance
func NewRoutes(service *services.Service) *Routes {
	return &Routes{
		service: service,
	}
}

// RegisterUnifiedRoutes registers all creature routes with Huma v2
func (r *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-creatures",
		Method:      http.MethodGet,
		Path:        "/creatures",
		Summary:     "List creatures",
		Description: "Returns the localized creature catalog, optionally filtered by a substring of the name or faction",
		Tags:        []string{"Creatures"},
		Errors:      []int{http.StatusNotFound, http.StatusServiceUnavailable},
	}, r.listCreatures)

	huma.Register(api, huma.Operation{
		OperationID: "list-locales",
		Method:      http.MethodGet,
		Path:        "/locales",
		Summary:     "List locales",
		Description: "Returns the locale codes that have a creature catalog",
		Tags:        []string{"Creatures"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, r.listLocales)

	huma.Register(api, huma.Operation{
		OperationID: "creatures-status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Get creatures module status",
		Description: "Reports the data store state and cache backend without loading the catalog",
		Tags:        []string{"Module Status"},
	}, r.getStatus)
}

func (r *Routes) listCreatures(ctx context.Context, input *dto.ListCreaturesInput) (*dto.CreaturesOutput, error) {
	creatures, err := r.service.Query(ctx, input.Filter, input.Lang)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &dto.CreaturesOutput{Body: creatures}, nil
}

func (r *Routes) listLocales(ctx context.Context, input *dto.ListLocalesInput) (*dto.LocalesOutput, error) {
	locales, err := r.service.Locales(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &dto.LocalesOutput{Body: locales}, nil
}

func (r *Routes) getStatus(ctx context.Context, input *dto.StatusInput) (*dto.StatusOutput, error) {
	return &dto.StatusOutput{Body: *r.service.GetStatus(ctx)}, nil
}

// toHumaError maps catalog failures to client responses
func toHumaError(err error) error {
	var unknown *catalog.UnknownLocaleError
	switch {
	case errors.As(err, &unknown):
		return huma.Error404NotFound("No creature catalog for locale "+unknown.Locale, err)
	case errors.Is(err, catalog.ErrDataLoad),
		errors.Is(err, catalog.ErrLocalizationMissing),
		errors.Is(err, catalog.ErrUnknownAbilityReference):
		return huma.Error503ServiceUnavailable("Creature catalog is unavailable", err)
	default:
		return huma.Error500InternalServerError("Failed to query creatures", err)
	}
}
