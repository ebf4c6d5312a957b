package models

// Request bodies carry an operation discriminator plus the record fields for
// that operation. Field matching in encoding/json is case-insensitive, so the
// PascalCase tags below also accept the lower-case keys older clients send;
// only the snake_case variants need their own fields.

type AssessmentRequest struct {
	Operation         string `json:"operation"`
	SkillAssessmentID string `json:"SkillAssessmentId"`
	Employee          string `json:"Employee"`
	Skill             string `json:"Skill"`
	Current           string `json:"Current"`
	Target            string `json:"Target"`
}

type LearningPathRequest struct {
	Operation      string `json:"operation"`
	LearningPathID string `json:"LearningPathId"`
	Employee       string `json:"Employee"`
	Skill          string `json:"Skill"`
	Level          string `json:"Level"`
	Name           string `json:"Name"`
	Source         string `json:"Source"`
	Duration       string `json:"Duration"`
	URL            string `json:"Url"`
	Completed      bool   `json:"Completed"`
	StartDate      string `json:"StateDate"`
	EndDate        string `json:"EndDate"`

	// Present when a skill assessment asks for generated paths.
	SkillAssessmentID string `json:"SkillAssessmentId"`
	Current           string `json:"Current"`
	Target            string `json:"Target"`
}

type RecommendationRequest struct {
	Operation         string `json:"operation"`
	RecommendationID  string `json:"RecommendationId"`
	LearningPathID    string `json:"LearningPathId"`
	SkillAssessmentID string `json:"SkillAssessmentId"`
	Employee          string `json:"Employee"`
	Skill             string `json:"Skill"`
	Current           string `json:"Current"`
	Target            string `json:"Target"`

	// Alternate keys used by the recommendation widget.
	CurrentLevel string `json:"current_level"`
	TargetLevel  string `json:"target_level"`
}
