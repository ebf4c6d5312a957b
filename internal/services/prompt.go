package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildRecommendationPrompt asks the model for course recommendations as a
// bare JSON array. The exact-format instruction matters: the response parser
// extracts the first balanced array and decodes only these four keys.
func (pb *PromptBuilder) BuildRecommendationPrompt(skill, currentLevel, targetLevel, employee string) string {
	return fmt.Sprintf(`Generate 3-5 personalized learning recommendations for:
Employee: %s
Skill: %s
Current Level: %s
Target Level: %s

Provide practical, real-world courses from platforms like Coursera, Udemy, AWS Training, Microsoft Learn, Pluralsight, etc.

Return ONLY a JSON array with this exact format:
[
  {
    "name": "Course Name",
    "source": "Platform Name",
    "duration": "X weeks/hours",
    "url": "https://example.com/course"
  }
]`,
		employee, skill, currentLevel, targetLevel)
}
