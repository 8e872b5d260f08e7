package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is a recorded scoring run. Rows are only written when the history
// store is enabled; the document and job description themselves are never stored.
type Analysis struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OriginalFileName     string    `gorm:"type:text" json:"original_filename"`
	ContentType          string    `gorm:"type:text" json:"content_type"`
	PageCount            int       `gorm:"not null;default:0" json:"page_count"`
	MatchPercentage      float64   `gorm:"type:decimal(5,2)" json:"match_percentage"`
	MissingKeywords      []string  `gorm:"type:jsonb;serializer:json" json:"missing_keywords"`
	ResumeLength         int       `gorm:"not null" json:"resume_length"`
	JobDescriptionLength int       `gorm:"not null" json:"job_description_length"`
	CreatedAt            time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
