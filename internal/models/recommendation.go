package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CourseRecommendation is the wire shape the generative model is asked to
// produce, and the shape embedded in a stored batch. Duration stays free text
// ("4 weeks", "22 hours"); it is only interpreted when dates are derived.
type CourseRecommendation struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
}

// CourseList stores the embedded recommendations as a JSON column.
type CourseList []CourseRecommendation

func (l CourseList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *CourseList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported course list column type %T", value)
	}
}

// RecommendationBatch is one persisted generation result. Learning paths are
// not stored for it; a virtual view is derived per embedded course at read
// time, keyed by the content-derived identifier.
type RecommendationBatch struct {
	ID                string     `gorm:"type:text;primary_key" json:"RecommendationId"`
	Employee          string     `gorm:"type:text" json:"Employee"`
	Skill             string     `gorm:"type:text" json:"Skill"`
	CurrentLevel      string     `gorm:"type:text" json:"CurrentLevel"`
	TargetLevel       string     `gorm:"type:text" json:"TargetLevel"`
	Recommendations   CourseList `gorm:"type:jsonb" json:"Recommendations"`
	CreatedAt         string     `gorm:"type:text" json:"CreatedAt"`
	Provider          string     `gorm:"type:text" json:"Source"`
	SkillAssessmentID string     `gorm:"type:text" json:"SkillAssessmentId,omitempty"`
}

func (RecommendationBatch) TableName() string {
	return "recommendation_batches"
}
