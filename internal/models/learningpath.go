package models

// LearningPath is one concrete course an employee is working through.
// StartDate and EndDate are DD-MM-YYYY strings and may be empty for paths
// created before scheduling. The "StateDate" JSON key is a long-standing
// typo in the wire contract that the frontend depends on.
type LearningPath struct {
	ID        string `gorm:"type:text;primary_key" json:"LearningPathId"`
	Employee  string `gorm:"type:text" json:"Employee"`
	Skill     string `gorm:"type:text" json:"Skill"`
	Level     string `gorm:"type:text" json:"Level"`
	Name      string `gorm:"type:text" json:"Name"`
	Source    string `gorm:"type:text" json:"Source"`
	Duration  string `gorm:"type:text" json:"Duration"`
	URL       string `gorm:"type:text" json:"Url"`
	Completed bool   `gorm:"default:false" json:"Completed"`
	StartDate string `gorm:"type:text" json:"StateDate"`
	EndDate   string `gorm:"type:text" json:"EndDate"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}
