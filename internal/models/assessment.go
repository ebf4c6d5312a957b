package models

// SkillAssessment records where an employee currently stands on a skill and
// where they want to get to. Updates are full replacements of the record.
type SkillAssessment struct {
	ID           string `gorm:"type:text;primary_key" json:"SkillAssessmentId"`
	Employee     string `gorm:"type:text" json:"Employee"`
	Skill        string `gorm:"type:text" json:"Skill"`
	CurrentLevel string `gorm:"type:text" json:"Current"`
	TargetLevel  string `gorm:"type:text" json:"Target"`
}

func (SkillAssessment) TableName() string {
	return "skill_assessments"
}
