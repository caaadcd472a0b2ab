package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"oldenera-wiki/internal/creatures/dto"
	"oldenera-wiki/internal/creatures/services"
	"oldenera-wiki/pkg/cache"
	"oldenera-wiki/pkg/catalog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataFS() fstest.MapFS {
	return fstest.MapFS{
		"creatures.yml": {Data: []byte(`
- name: "$griffin_name"
  level: 3
  type: Magic Creature
  faction: "$temple"
  health: 30
  attack: 7
  defence: 5
  minDamage: 3
  maxDamage: 5
  initiative: 6
  speed: 7
  morale: 0
  luck: 0
  abilities: [flying]
- name: "$imp_name"
  level: 1
  type: Demon
  faction: "$inferno"
  health: 6
  attack: 2
  defence: 1
  minDamage: 1
  maxDamage: 2
  initiative: 8
  speed: 5
  morale: -1
  luck: 1
`)},
		"abilities.yml": {Data: []byte(`
flying:
  name: "$flying_ability_name"
  description: "$flying_ability_description"
`)},
		"locale/en.yml": {Data: []byte(`
griffin_name: Griffin
imp_name: Imp
temple: Temple
inferno: Inferno
flying_ability_name: Flying
flying_ability_description: Can fly over walls.
`)},
		"locale/ru.yml": {Data: []byte(`
griffin_name: Грифон
imp_name: Бес
temple: Храм
inferno: Инферно
flying_ability_name: Полёт
flying_ability_description: Может перелетать через стены.
`)},
	}
}

func newTestRouter(t *testing.T, store catalog.Provider) http.Handler {
	t.Helper()

	service := services.NewService(store, cache.NewMemory())
	t.Cleanup(service.Close)

	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("Creature Wiki Test", "1.0.0"))
	NewRoutes(service).RegisterUnifiedRoutes(api)
	return router
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeCreatures(t *testing.T, rec *httptest.ResponseRecorder) []catalog.Creature {
	t.Helper()
	var creatures []catalog.Creature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &creatures), rec.Body.String())
	return creatures
}

func TestListCreatures_DefaultsToEnglish(t *testing.T) {
	router := newTestRouter(t, catalog.NewStore(dataFS()))

	rec := get(t, router, "/creatures")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	creatures := decodeCreatures(t, rec)
	require.Len(t, creatures, 2)
	assert.Equal(t, "Griffin", creatures[0].Name)
	assert.Equal(t, "Imp", creatures[1].Name)
	assert.Equal(t, int32(-1), creatures[1].Morale)
}

func TestListCreatures_FilterAndLocale(t *testing.T) {
	router := newTestRouter(t, catalog.NewStore(dataFS()))

	tests := []struct {
		target string
		want   []string
	}{
		{target: "/creatures?filter=rif", want: []string{"Griffin"}},
		{target: "/creatures?filter=Inferno&lang=en", want: []string{"Imp"}},
		{target: "/creatures?filter=zzz", want: []string{}},
		{target: "/creatures?lang=ru", want: []string{"Грифон", "Бес"}},
		{target: "/creatures?lang=ru&filter=%D0%A5%D1%80%D0%B0%D0%BC", want: []string{"Грифон"}},
		{target: "/creatures?lang=EN", want: []string{"Griffin", "Imp"}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			got := make([]string, 0)
			for _, c := range decodeCreatures(t, rec) {
				got = append(got, c.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCreatures_WireFieldNames(t *testing.T) {
	router := newTestRouter(t, catalog.NewStore(dataFS()))

	rec := get(t, router, "/creatures?filter=Griffin")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 1)

	for _, key := range []string{"name", "level", "type", "faction", "health", "attack", "defence",
		"minDamage", "maxDamage", "initiative", "speed", "morale", "luck", "abilities"} {
		assert.Contains(t, raw[0], key)
	}
	assert.Equal(t, []any{map[string]any{"name": "Flying", "description": "Can fly over walls."}}, raw[0]["abilities"])
}

func TestListCreatures_UnknownLocale(t *testing.T) {
	router := newTestRouter(t, catalog.NewStore(dataFS()))

	rec := get(t, router, "/creatures?lang=de")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
	assert.Contains(t, rec.Body.String(), "de")
}

func TestListCreatures_BrokenDataIsUnavailable(t *testing.T) {
	fsys := dataFS()
	delete(fsys, "abilities.yml")
	router := newTestRouter(t, catalog.NewStore(fsys))

	rec := get(t, router, "/creatures")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "abilities.yml")

	rec = get(t, router, "/locales")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListLocales(t *testing.T) {
	router := newTestRouter(t, catalog.NewStore(dataFS()))

	rec := get(t, router, "/locales")
	require.Equal(t, http.StatusOK, rec.Code)

	var locales []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locales))
	assert.Equal(t, []string{"en", "ru"}, locales)
}

func TestStatus_DoesNotLoadCatalog(t *testing.T) {
	store := catalog.NewStore(dataFS())
	router := newTestRouter(t, store)

	rec := get(t, router, "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status dto.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "creatures", status.Module)
	assert.Equal(t, "uninitialized", status.StoreState)
	assert.Equal(t, "memory", status.Cache)
	assert.Equal(t, catalog.StateUninitialized, store.State())

	get(t, router, "/creatures")

	rec = get(t, router, "/status")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ready", status.StoreState)
	assert.Equal(t, "healthy", status.Status)
}

func TestOpenAPIDocument(t *testing.T) {
	router := newTestRouter(t, catalog.NewStore(dataFS()))

	rec := get(t, router, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/creatures")
	assert.Contains(t, paths, "/locales")
	assert.Contains(t, paths, "/status")
}
