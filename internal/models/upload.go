package models

import "time"

type Upload struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	AccountID *uint `gorm:"column:user_id;index" json:"user_id,omitempty"`

	ResumePath string `gorm:"type:text" json:"resume_path"`
	ResumeBlob []byte `json:"-"`
	JDPath     string `gorm:"column:jd_path;type:text" json:"jd_path"`
	JDBlob     []byte `gorm:"column:jd_blob" json:"-"`

	// Questions holds the JSON-encoded question list.
	Questions *string `gorm:"type:text" json:"-"`

	AnalysisScore   *int    `json:"analysis_score,omitempty"`
	AnalysisSummary *string `gorm:"type:text" json:"analysis_summary,omitempty"`
	Strengths       *string `gorm:"type:text" json:"-"`
	Weaknesses      *string `gorm:"type:text" json:"-"`
	Recommendations *string `gorm:"type:text" json:"-"`

	InterviewScore    *int    `json:"interview_score,omitempty"`
	InterviewFeedback *string `gorm:"type:text" json:"interview_feedback,omitempty"`
	InterviewReport   *string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (Upload) TableName() string {
	return "uploads"
}
