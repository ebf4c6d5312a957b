package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillpath/internal/models"
	"skillpath/internal/repositories"
)

// RecommenderService produces course recommendations for a skill gap. The
// generative path is best-effort: any service or parse failure downgrades to
// the static fallback, so Generate never returns an error to the handler.
type RecommenderService interface {
	Generate(ctx context.Context, skill, currentLevel, targetLevel, employee, assessmentID string) (string, []models.CourseRecommendation)
}

type recommenderService struct {
	generator     TextGenerator
	batchRepo     repositories.RecommendationRepository
	promptBuilder *PromptBuilder
	now           func() time.Time
}

func NewRecommenderService(
	generator TextGenerator,
	batchRepo repositories.RecommendationRepository,
) RecommenderService {
	return &recommenderService{
		generator:     generator,
		batchRepo:     batchRepo,
		promptBuilder: NewPromptBuilder(),
		now:           time.Now,
	}
}

// Generate returns the id of the persisted batch and the chosen
// recommendations. A persistence failure is swallowed: the recommendations
// are still handed back under a fresh id so the caller never sees a storage
// error on this path.
func (r *recommenderService) Generate(ctx context.Context, skill, currentLevel, targetLevel, employee, assessmentID string) (string, []models.CourseRecommendation) {
	recommendations := r.generateCourses(ctx, skill, currentLevel, targetLevel, employee)

	batch := &models.RecommendationBatch{
		ID:                uuid.New().String(),
		Employee:          employee,
		Skill:             skill,
		CurrentLevel:      currentLevel,
		TargetLevel:       targetLevel,
		Recommendations:   recommendations,
		CreatedAt:         r.now().UTC().Format(time.RFC3339),
		Provider:          "Gemini AI",
		SkillAssessmentID: assessmentID,
	}

	if err := r.batchRepo.Put(batch); err != nil {
		log.Printf("⚠️  Failed to save recommendation batch: %v\n", err)
		return uuid.New().String(), recommendations
	}

	return batch.ID, recommendations
}

func (r *recommenderService) generateCourses(ctx context.Context, skill, currentLevel, targetLevel, employee string) []models.CourseRecommendation {
	prompt := r.promptBuilder.BuildRecommendationPrompt(skill, currentLevel, targetLevel, employee)

	response, err := r.generator.GenerateText(ctx, prompt, 0.1)
	if err != nil {
		log.Printf("⚠️  Generation failed: %v. Using fallback recommendations.\n", err)
		return FallbackRecommendations(skill)
	}

	arr, ok := extractJSONArray(response)
	if !ok {
		log.Println("⚠️  No JSON array found in model response. Using fallback recommendations.")
		return FallbackRecommendations(skill)
	}

	var recommendations []models.CourseRecommendation
	if err := json.Unmarshal([]byte(arr), &recommendations); err != nil {
		log.Printf("⚠️  Failed to decode model response: %v. Using fallback recommendations.\n", err)
		return FallbackRecommendations(skill)
	}

	if len(recommendations) == 0 {
		return FallbackRecommendations(skill)
	}

	log.Printf("✅ Generated %d recommendations for %s\n", len(recommendations), skill)
	return recommendations
}

// extractJSONArray returns the first balanced [...] in text. Models often
// append commentary after the array, so the closing bracket is found by
// depth counting rather than a last-index search.
func extractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// FallbackRecommendations is the deterministic substitute for a failed
// generation: keyword-matched static pairs, or a synthesized generic pair
// for skills outside the known set. Keywords are checked in order, first
// match wins.
func FallbackRecommendations(skill string) []models.CourseRecommendation {
	skillLower := strings.ToLower(strings.TrimSpace(skill))

	switch {
	case strings.Contains(skillLower, "ai") || strings.Contains(skillLower, "artificial intelligence"):
		return []models.CourseRecommendation{
			{Name: "Introduction to Artificial Intelligence", Source: "Coursera", Duration: "4 weeks", URL: "https://www.coursera.org/learn/introduction-to-ai"},
			{Name: "Machine Learning Course", Source: "Coursera", Duration: "11 weeks", URL: "https://www.coursera.org/learn/machine-learning"},
		}
	case strings.Contains(skillLower, "azure"):
		return []models.CourseRecommendation{
			{Name: "Azure Fundamentals AZ-900", Source: "Microsoft Learn", Duration: "3 weeks", URL: "https://docs.microsoft.com/en-us/learn/paths/azure-fundamentals/"},
			{Name: "Azure Administrator AZ-104", Source: "Microsoft Learn", Duration: "8 weeks", URL: "https://docs.microsoft.com/en-us/learn/paths/az-104-administrator-prerequisites/"},
		}
	case strings.Contains(skillLower, "aws"):
		return []models.CourseRecommendation{
			{Name: "AWS Cloud Practitioner", Source: "AWS Training", Duration: "4 weeks", URL: "https://aws.amazon.com/training/learn-about/cloud-practitioner/"},
			{Name: "AWS Solutions Architect", Source: "AWS Training", Duration: "12 weeks", URL: "https://aws.amazon.com/training/learn-about/architect/"},
		}
	case strings.Contains(skillLower, "python"):
		return []models.CourseRecommendation{
			{Name: "Python for Everybody", Source: "Coursera", Duration: "8 months", URL: "https://www.coursera.org/specializations/python"},
			{Name: "Complete Python Bootcamp", Source: "Udemy", Duration: "22 hours", URL: "https://www.udemy.com/course/complete-python-bootcamp/"},
		}
	default:
		query := strings.ReplaceAll(skill, " ", "+")
		return []models.CourseRecommendation{
			{Name: fmt.Sprintf("%s Fundamentals", skill), Source: "Coursera", Duration: "6 weeks", URL: fmt.Sprintf("https://www.coursera.org/courses?query=%s", query)},
			{Name: fmt.Sprintf("Advanced %s", skill), Source: "Udemy", Duration: "8 weeks", URL: fmt.Sprintf("https://www.udemy.com/courses/search/?q=%s", query)},
		}
	}
}
