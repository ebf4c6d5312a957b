package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"skillpath/internal/services"
	"skillpath/internal/testutil"
)

type fiberBody = map[string]any

// testClock keeps derived dates deterministic across a test run.
var testClock = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

type testEnv struct {
	app         *fiber.App
	assessments *testutil.MemoryAssessmentRepo
	paths       *testutil.MemoryLearningPathRepo
	batches     *testutil.MemoryRecommendationRepo
	generator   *testutil.ScriptedTextGenerator
}

// newTestEnv wires the real handlers and routes over in-memory stores and a
// scripted text generator.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		assessments: testutil.NewMemoryAssessmentRepo(),
		paths:       testutil.NewMemoryLearningPathRepo(),
		batches:     testutil.NewMemoryRecommendationRepo(),
		generator:   &testutil.ScriptedTextGenerator{},
	}

	assessmentHandler := NewAssessmentHandler(env.assessments)
	pathHandler := &LearningPathHandler{repo: env.paths, now: testClock}
	recommendationHandler := &RecommendationHandler{
		repo:        env.batches,
		recommender: services.NewRecommenderService(env.generator, env.batches),
		now:         testClock,
	}

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/skill-assessments", assessmentHandler.Handle)
	api.Post("/learning-paths", pathHandler.Handle)
	api.Get("/learning-paths", pathHandler.HandleList)
	api.Post("/recommendations", recommendationHandler.Handle)
	api.Get("/recommendations", recommendationHandler.HandleList)
	api.Get("/recommendations/:id", recommendationHandler.HandleGet)
	api.Delete("/recommendations/:id", recommendationHandler.HandleDelete)

	env.app = app
	return env
}

func (e *testEnv) request(t *testing.T, method, path string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	fields := map[string]json.RawMessage{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &fields), "body: %s", raw)
	}

	return resp, fields
}

func decodeField[T any](t *testing.T, fields map[string]json.RawMessage, key string) T {
	t.Helper()

	var out T
	raw, ok := fields[key]
	require.True(t, ok, "missing field %q", key)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
