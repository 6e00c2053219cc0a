// file: internals/features/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Matches CHECK: 'pending','approved','rejected'
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

type SubmissionModel struct {
	SubmissionID     uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submission_id" json:"id"`
	SubmissionStatus SubmissionStatus `gorm:"type:varchar(16);not null;default:'pending';column:submission_status" json:"status"`

	SubmissionTitle       string `gorm:"type:varchar(160);not null;column:submission_title" json:"title"`
	SubmissionDescription string `gorm:"type:text;not null;default:'';column:submission_description" json:"description"`

	// Multi-valued tags, each a subset of a controlled vocabulary.
	SubmissionMaterial pq.StringArray `gorm:"type:text[];column:submission_material" json:"material"`
	SubmissionColor    pq.StringArray `gorm:"type:text[];column:submission_color" json:"color"`
	SubmissionFunction pq.StringArray `gorm:"type:text[];column:submission_function" json:"function"`

	// Ordered; element 0 is the thumbnail. JSONB keeps the order.
	SubmissionImageURLs datatypes.JSONSlice[string] `gorm:"type:jsonb;column:submission_image_urls" json:"imageUrls"`
	SubmissionPDFURL    *string                     `gorm:"type:text;column:submission_pdf_url" json:"pdfUrl,omitempty"`

	// Submitter identity, read-only after intake.
	SubmissionFirstName  string `gorm:"type:varchar(80);not null;default:'';column:submission_first_name" json:"firstName"`
	SubmissionLastName   string `gorm:"type:varchar(80);not null;default:'';column:submission_last_name" json:"lastName"`
	SubmissionEmail      string `gorm:"type:varchar(160);not null;default:'';column:submission_email" json:"email"`
	SubmissionGradeLevel string `gorm:"type:varchar(40);not null;default:'';column:submission_grade_level" json:"gradeLevel"`

	SubmissionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:submission_created_at" json:"createdAt"`
	SubmissionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:submission_updated_at" json:"updatedAt"`
	SubmissionDeletedAt gorm.DeletedAt `gorm:"column:submission_deleted_at;index" json:"-"`
}

func (SubmissionModel) TableName() string { return "ia_submissions" }

// AllBlobURLs collects every object URL the record references, PDF first.
// Used by the permanent-delete cascade.
func (m *SubmissionModel) AllBlobURLs() []string {
	urls := make([]string, 0, len(m.SubmissionImageURLs)+1)
	if m.SubmissionPDFURL != nil && *m.SubmissionPDFURL != "" {
		urls = append(urls, *m.SubmissionPDFURL)
	}
	urls = append(urls, m.SubmissionImageURLs...)
	return urls
}
