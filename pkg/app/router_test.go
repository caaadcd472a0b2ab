package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"oldenera-wiki/internal/creatures"
	"oldenera-wiki/pkg/cache"
	"oldenera-wiki/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, fsys fstest.MapFS, prefix string) (http.Handler, *catalog.Store) {
	t.Helper()

	store := catalog.NewStore(fsys)
	mod := creatures.New(store, cache.Disabled{}, nil, creatures.Config{})
	t.Cleanup(mod.Stop)

	handler, _ := NewRouter(ServerOptions{ServiceName: "wiki-test", APIPrefix: prefix}, mod)
	return handler, store
}

func serve(handler http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func wikiFS() fstest.MapFS {
	return fstest.MapFS{
		"creatures.yml": {Data: []byte(`
- name: "$griffin_name"
  level: 3
  type: Beast
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
`)},
		"abilities.yml": {Data: []byte(`
flying:
  name: "$flying_ability_name"
  description: "$flying_ability_description"
`)},
		"locale/en.yml": {Data: []byte(`
griffin_name: Griffin
temple: Temple
flying_ability_name: Flying
flying_ability_description: Can fly over walls.
`)},
	}
}

func TestHealth_IndependentOfCatalog(t *testing.T) {
	fsys := wikiFS()
	delete(fsys, "creatures.yml")
	handler, store := newTestServer(t, fsys, "")

	rec := serve(handler, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	assert.Equal(t, catalog.StateUninitialized, store.State())

	// Still healthy once the catalog has failed to load
	assert.Equal(t, http.StatusServiceUnavailable, serve(handler, "/creatures").Code)
	assert.Equal(t, http.StatusOK, serve(handler, "/health").Code)
}

func TestCreatures_EndToEnd(t *testing.T) {
	handler, _ := newTestServer(t, wikiFS(), "")

	rec := serve(handler, "/creatures?filter=rif&lang=en")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var creatures []catalog.Creature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &creatures))
	require.Len(t, creatures, 1)
	assert.Equal(t, "Griffin", creatures[0].Name)
	assert.Equal(t, "Temple", creatures[0].Faction)
	assert.Equal(t, []catalog.Ability{{Name: "Flying", Description: "Can fly over walls."}}, creatures[0].Abilities)
}

func TestAPIPrefix(t *testing.T) {
	handler, _ := newTestServer(t, wikiFS(), "/api")

	assert.Equal(t, http.StatusOK, serve(handler, "/api/creatures").Code)
	assert.Equal(t, http.StatusOK, serve(handler, "/api/openapi.json").Code)
	assert.Equal(t, http.StatusOK, serve(handler, "/health").Code)
	assert.Equal(t, http.StatusNotFound, serve(handler, "/creatures").Code)
}

func TestUnknownRoute(t *testing.T) {
	handler, _ := newTestServer(t, wikiFS(), "")

	rec := serve(handler, "/dragons")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}
