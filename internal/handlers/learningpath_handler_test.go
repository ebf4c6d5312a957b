package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath/internal/models"
	"skillpath/internal/services"
)

func TestLearningPathGenerateFromAssessment(t *testing.T) {
	env := newTestEnv(t)

	resp, fields := env.request(t, http.MethodPost, "/api/v1/learning-paths", fiberBody{
		"SkillAssessmentId": "sa-1",
		"Employee":          "alice",
		"Skill":             "aws",
		"Current":           "beginner",
		"Target":            "basic",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	created := decodeField[[]models.LearningPath](t, fields, "Learning-Paths")
	require.NotEmpty(t, created)

	for _, path := range created {
		assert.Equal(t, "aws", path.Skill)
		assert.Equal(t, "alice", path.Employee)
		assert.Equal(t, "basic", path.Level)
		assert.False(t, path.Completed)

		start, err := time.Parse(services.DateLayout, path.StartDate)
		require.NoError(t, err, "start date %q", path.StartDate)
		end, err := time.Parse(services.DateLayout, path.EndDate)
		require.NoError(t, err, "end date %q", path.EndDate)
		assert.False(t, end.Before(start))
	}

	// The paths are stored, not just echoed.
	stored, err := env.paths.Scan()
	require.NoError(t, err)
	assert.Len(t, stored, len(created))
}

func TestLearningPathGenerate_UnknownSkillGetsGenericCourse(t *testing.T) {
	env := newTestEnv(t)

	_, fields := env.request(t, http.MethodPost, "/api/v1/learning-paths", fiberBody{
		"SkillAssessmentId": "sa-1",
		"Employee":          "alice",
		"Skill":             "basket weaving",
		"Current":           "beginner",
		"Target":            "basic",
	})

	created := decodeField[[]models.LearningPath](t, fields, "Learning-Paths")
	require.Len(t, created, 1)
	assert.Equal(t, "General Programming Course", created[0].Name)
}

func TestLearningPathCRUD(t *testing.T) {
	env := newTestEnv(t)

	_, createFields := env.request(t, http.MethodPost, "/api/v1/learning-paths", fiberBody{
		"operation": "create",
		"Employee":  "alice",
		"Skill":     "go",
		"Level":     "intermediate",
		"Name":      "Go in Practice",
		"Source":    "Manning",
		"Duration":  "6 weeks",
		"Url":       "https://manning.com/go-in-practice",
	})

	id := decodeField[string](t, createFields, "LearningPathId")
	require.NotEmpty(t, id)

	_, readFields := env.request(t, http.MethodPost, "/api/v1/learning-paths", fiberBody{
		"operation":      "read",
		"LearningPathId": id,
	})
	assert.Equal(t, "Go in Practice", decodeField[string](t, readFields, "Name"))

	resp, updateFields := env.request(t, http.MethodPost, "/api/v1/learning-paths", fiberBody{
		"operation":      "update",
		"LearningPathId": id,
		"Employee":       "alice",
		"Skill":          "go",
		"Level":          "intermediate",
		"Name":           "Go in Practice",
		"Source":         "Manning",
		"Duration":       "6 weeks",
		"Url":            "https://manning.com/go-in-practice",
		"Completed":      true,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Updated", decodeField[string](t, updateFields, "message"))

	stored, err := env.paths.Get(id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Completed)

	env.request(t, http.MethodPost, "/api/v1/learning-paths", fiberBody{
		"operation":      "delete",
		"LearningPathId": id,
	})

	_, listFields := env.request(t, http.MethodGet, "/api/v1/learning-paths", nil)
	items := decodeField[[]models.LearningPath](t, listFields, "Learning-Paths")
	assert.Empty(t, items)
}

func TestLearningPathRead_AbsentReturnsEmptyObject(t *testing.T) {
	env := newTestEnv(t)

	resp, fields := env.request(t, http.MethodPost, "/api/v1/learning-paths", fiberBody{
		"operation":      "read",
		"LearningPathId": "missing",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, fields)
}
