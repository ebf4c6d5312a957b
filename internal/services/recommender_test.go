package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath/internal/testutil"
)

const modelArrayResponse = `Here are some courses:
[
  {"name": "Go in Practice", "source": "Manning", "duration": "6 weeks", "url": "https://manning.com/go-in-practice"},
  {"name": "Advanced Go", "source": "Udemy", "duration": "12 hours", "url": "https://udemy.com/advanced-go"}
]
I hope these recommendations help you reach your target level!`

func newTestRecommender(gen TextGenerator, repo *testutil.MemoryRecommendationRepo) *recommenderService {
	return &recommenderService{
		generator:     gen,
		batchRepo:     repo,
		promptBuilder: NewPromptBuilder(),
		now:           func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{
			name:   "bare array",
			in:     `[{"name":"a"}]`,
			want:   `[{"name":"a"}]`,
			wantOK: true,
		},
		{
			name:   "trailing prose excluded",
			in:     `[{"name":"a"}] and that concludes my recommendations.`,
			want:   `[{"name":"a"}]`,
			wantOK: true,
		},
		{
			name:   "leading prose skipped",
			in:     "Sure! Here you go:\n[1, 2, 3]\nEnjoy.",
			want:   "[1, 2, 3]",
			wantOK: true,
		},
		{
			name:   "nested arrays stay balanced",
			in:     `[[1, 2], [3]] tail`,
			want:   `[[1, 2], [3]]`,
			wantOK: true,
		},
		{
			name:   "unbalanced array rejected",
			in:     `[{"name":"a"}`,
			wantOK: false,
		},
		{
			name:   "no array at all",
			in:     "I cannot produce JSON today.",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONArray(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGenerate_ParsesModelResponseAndPersists(t *testing.T) {
	repo := testutil.NewMemoryRecommendationRepo()
	gen := &testutil.ScriptedTextGenerator{Response: modelArrayResponse}
	recommender := newTestRecommender(gen, repo)

	id, recs := recommender.Generate(context.Background(), "go", "beginner", "intermediate", "alice", "sa-1")

	require.Len(t, recs, 2)
	assert.Equal(t, "Go in Practice", recs[0].Name)
	assert.Equal(t, "Advanced Go", recs[1].Name)
	assert.Equal(t, 1, gen.Calls)

	batch, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, "alice", batch.Employee)
	assert.Equal(t, "go", batch.Skill)
	assert.Equal(t, "beginner", batch.CurrentLevel)
	assert.Equal(t, "intermediate", batch.TargetLevel)
	assert.Equal(t, "sa-1", batch.SkillAssessmentID)
	assert.Equal(t, "2025-03-10T09:00:00Z", batch.CreatedAt)
	require.Len(t, batch.Recommendations, 2)
}

func TestGenerate_ServiceFailureFallsBack(t *testing.T) {
	repo := testutil.NewMemoryRecommendationRepo()
	gen := &testutil.ScriptedTextGenerator{Err: fmt.Errorf("model unavailable")}
	recommender := newTestRecommender(gen, repo)

	_, recs := recommender.Generate(context.Background(), "aws", "beginner", "basic", "alice", "")

	assert.Equal(t, FallbackRecommendations("aws"), recs)
	// The fallback batch is still persisted.
	assert.Equal(t, 1, repo.Len())
}

func TestGenerate_MalformedResponseFallsBack(t *testing.T) {
	for name, response := range map[string]string{
		"no array":    "no recommendations today",
		"unbalanced":  `[{"name": "incomplete"`,
		"not objects": `[1, 2, 3]`,
		"empty array": `[]`,
	} {
		t.Run(name, func(t *testing.T) {
			repo := testutil.NewMemoryRecommendationRepo()
			gen := &testutil.ScriptedTextGenerator{Response: response}
			recommender := newTestRecommender(gen, repo)

			_, recs := recommender.Generate(context.Background(), "python", "beginner", "intermediate", "bob", "")

			assert.Equal(t, FallbackRecommendations("python"), recs)
		})
	}
}

func TestGenerate_PersistenceFailureStillReturnsID(t *testing.T) {
	repo := testutil.NewMemoryRecommendationRepo()
	repo.FailPuts = true
	gen := &testutil.ScriptedTextGenerator{Response: modelArrayResponse}
	recommender := newTestRecommender(gen, repo)

	id, recs := recommender.Generate(context.Background(), "go", "beginner", "intermediate", "alice", "")

	assert.NotEmpty(t, id)
	require.Len(t, recs, 2)
	assert.Equal(t, 0, repo.Len())
}

func TestFallbackRecommendations_KeywordOrder(t *testing.T) {
	tests := []struct {
		skill     string
		wantFirst string
	}{
		{"AI", "Introduction to Artificial Intelligence"},
		{"Artificial Intelligence", "Introduction to Artificial Intelligence"},
		{"Azure", "Azure Fundamentals AZ-900"},
		{"aws", "AWS Cloud Practitioner"},
		{"Python", "Python for Everybody"},
	}

	for _, tt := range tests {
		recs := FallbackRecommendations(tt.skill)
		require.Len(t, recs, 2, "skill %q", tt.skill)
		assert.Equal(t, tt.wantFirst, recs[0].Name, "skill %q", tt.skill)
	}
}

func TestFallbackRecommendations_SynthesizedPair(t *testing.T) {
	recs := FallbackRecommendations("Rust Programming")

	require.Len(t, recs, 2)
	assert.Equal(t, "Rust Programming Fundamentals", recs[0].Name)
	assert.Equal(t, "Advanced Rust Programming", recs[1].Name)
	assert.Contains(t, recs[0].URL, "Rust+Programming")
}
