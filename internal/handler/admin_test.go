package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingOverhaul_Go/internal/actordata"
	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/content"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/fishing"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// flakySource fails every load after the first
type flakySource struct {
	loads int
}

func (f *flakySource) Name() string { return "flaky" }

func (f *flakySource) Reload(context.Context) (domain.FishingContent, error) {
	f.loads++
	if f.loads > 1 {
		return domain.FishingContent{}, domain.ErrSourceFailed
	}
	return testContent(), nil
}

func testContent() domain.FishingContent {
	return domain.FishingContent{
		AddFish: []domain.FishEntry{
			{FishKey: domain.ObjectKey("128"), Availability: domain.NewFishAvailability(1)},
			{FishKey: domain.ObjectKey("129"), Availability: domain.NewFishAvailability(3)},
		},
		AddTrash: []domain.TrashEntry{
			{ItemKey: domain.ObjectKey("167"), Availability: domain.NewAvailability(1)},
		},
		AddTreasure: []domain.TreasureEntry{
			{ItemKeys: []domain.NamespacedKey{domain.ObjectKey("166")}, Availability: domain.NewAvailability(1), MinQuantity: 1, MaxQuantity: 1},
		},
	}
}

type testApp struct {
	reg   *registry.Registry
	store *actordata.Memory
	svc   *fishing.Service
}

func newTestApp(t *testing.T, sources ...content.Source) testApp {
	t.Helper()
	if len(sources) == 0 {
		sources = []content.Source{content.NewStaticSource("test", testContent())}
	}

	store := actordata.NewMemory()
	history := fishing.NewHistory(store, "FishingOverhaul")
	preds := availability.NewPredicateRegistry()
	availability.RegisterBuiltins(preds, history, gametime.Never)

	reg := registry.New(availability.NewModel(preds), event.NewMemoryBus())
	require.NoError(t, reg.Reload(context.Background(), sources...))

	svc := fishing.NewService(reg, history, event.Discard{}, utils.NewSeededRandom(1), config.DefaultFishing())
	return testApp{reg: reg, store: store, svc: svc}
}

func TestHandleGetRegistry(t *testing.T) {
	app := newTestApp(t)

	w := httptest.NewRecorder()
	HandleGetRegistry(app.reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/registry", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got RegistrySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"test"}, got.Sources)
	assert.Equal(t, 2, got.Fish)
	assert.Equal(t, 1, got.Trash)
	assert.Equal(t, 1, got.Treasure)
	assert.False(t, got.LoadedAt.IsZero())
}

func TestHandleReload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app := newTestApp(t)
		before := app.reg.Current(context.Background()).LoadedAt

		w := httptest.NewRecorder()
		HandleReload(app.reg).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var got ReloadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, MsgReloaded, got.Message)
		assert.Equal(t, 2, got.Registry.Fish)
		assert.False(t, app.reg.Current(context.Background()).LoadedAt.Before(before))
	})

	t.Run("failing source", func(t *testing.T) {
		app := newTestApp(t, &flakySource{})

		w := httptest.NewRecorder()
		HandleReload(app.reg).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))

		require.Equal(t, http.StatusMultiStatus, w.Code)
		var got ReloadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, ErrMsgContentError, got.Error)
		assert.Zero(t, got.Registry.Fish, "the failed source contributes nothing")
	})
}

// failingActors fails every call
type failingActors struct{}

func (failingActors) All(context.Context, string) (map[string]string, error) {
	return nil, domain.ErrDatabaseError
}

func (failingActors) Clear(context.Context, string) (int, error) {
	return 0, errors.Join(errors.New("conn reset"), domain.ErrDatabaseError)
}

func actorRouter(store ActorStore) http.Handler {
	r := chi.NewRouter()
	r.Get("/admin/actors/{actorID}", HandleGetActor(store))
	r.Delete("/admin/actors/{actorID}", HandleClearActor(store))
	return r
}

func TestActorEndpoints(t *testing.T) {
	ctx := context.Background()
	store := actordata.NewMemory()
	require.NoError(t, store.Set(ctx, "farmer-1", "FishingOverhaul/streak", "4"))
	router := actorRouter(store)

	t.Run("get", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/actors/farmer-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var got ActorDataResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "farmer-1", got.ActorID)
		assert.Equal(t, map[string]string{"FishingOverhaul/streak": "4"}, got.Values)
	})

	t.Run("unknown actor is empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/actors/nobody", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"values":{}`)
	})

	t.Run("clear", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/actors/farmer-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var got ClearActorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.Removed)

		_, ok, err := store.Get(ctx, "farmer-1", "FishingOverhaul/streak")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store errors map to 503", func(t *testing.T) {
		failing := actorRouter(failingActors{})
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			w := httptest.NewRecorder()
			failing.ServeHTTP(w, httptest.NewRequest(method, "/admin/actors/farmer-1", nil))
			assert.Equal(t, http.StatusServiceUnavailable, w.Code, method)
		}
	})

	t.Run("blank actor", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/actors/%20", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandlePreviewChances(t *testing.T) {
	app := newTestApp(t)
	handler := HandlePreviewChances(app.svc)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chances", strings.NewReader(body)))
		return w
	}

	t.Run("distribution", func(t *testing.T) {
		w := post(`{"actor_id":"farmer-1","location":"Town","time":1200,"season":"spring","weather":"sunny","water_depth":5,"fish_caught_count":10}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got ChancesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got.AttemptID)
		assert.Zero(t, got.Streak)
		require.Len(t, got.Fish, 2)
		assert.InDelta(t, got.FishChance*0.25, got.Fish[0].Chance, 1e-9)
		assert.InDelta(t, got.FishChance*0.75, got.Fish[1].Chance, 1e-9)
		require.Len(t, got.Trash, 1)
		assert.InDelta(t, 1-got.FishChance, got.Trash[0].Chance, 1e-9)
		require.Len(t, got.Treasure, 1)
		assert.InDelta(t, 1.0, got.Treasure[0].Chance, 1e-9)
	})

	t.Run("streak is read from the store", func(t *testing.T) {
		history := fishing.NewHistory(app.store, "FishingOverhaul")
		require.NoError(t, history.SetStreak(context.Background(), "farmer-2", 3))

		w := post(`{"actor_id":"farmer-2","location":"Town","time":1200,"season":"spring","weather":"sunny"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"streak":3`)
	})

	t.Run("validation errors", func(t *testing.T) {
		w := post(`{"actor_id":"farmer-1","location":"Town","time":1200,"season":"monsoon","weather":"sunny","bait":":1"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var got ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Contains(t, got.Fields, "season")
		assert.Contains(t, got.Fields, "bait")
	})

	t.Run("no fish means certain trash", func(t *testing.T) {
		trashOnly := testContent()
		trashOnly.AddFish = nil
		app := newTestApp(t, content.NewStaticSource("trash", trashOnly))

		w := httptest.NewRecorder()
		body := `{"actor_id":"farmer-1","location":"Town","time":1200,"season":"spring","weather":"sunny"}`
		HandlePreviewChances(app.svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chances", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got ChancesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Empty(t, got.Fish)
		assert.Zero(t, got.FishChance)
		require.Len(t, got.Trash, 1)
		assert.InDelta(t, 1.0, got.Trash[0].Chance, 1e-9)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(`{"actor_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}
