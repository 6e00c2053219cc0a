// file: internals/features/submissions/dto/submission_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"iagallery_backend/internals/constants"
	model "iagallery_backend/internals/features/submissions/model"
)

//
// =========================================================
// REQUEST DTOs
// =========================================================
//

// SubmissionActionRequest covers approve / reject / move-to-pending /
// permanent-delete. The password rides along for the legacy auth path;
// the middleware consumes it, controllers never look at it.
type SubmissionActionRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Password string    `json:"password,omitempty"`
}

type UpdateSubmissionRequest struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=160"`
	Description string    `json:"description" validate:"max=10000"`
	Material    []string  `json:"material"`
	Color       []string  `json:"color"`
	Function    []string  `json:"function"`
	ImageURLs   []string  `json:"imageUrls"`
	Password    string    `json:"password,omitempty"`
}

type DeleteImageRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	ImageURL string    `json:"imageUrl" validate:"required,url"`
	Password string    `json:"password,omitempty"`
}

// CreateSubmissionRequest is the intake form (multipart fields; files are
// read separately from the form).
type CreateSubmissionRequest struct {
	Title       string `form:"title" json:"title" validate:"required,max=160"`
	Description string `form:"description" json:"description" validate:"max=10000"`
	FirstName   string `form:"firstName" json:"firstName" validate:"required,max=80"`
	LastName    string `form:"lastName" json:"lastName" validate:"required,max=80"`
	Email       string `form:"email" json:"email" validate:"required,email,max=160"`
	GradeLevel  string `form:"gradeLevel" json:"gradeLevel" validate:"max=40"`

	// Comma-separated in the form ("Wood,Glass").
	Material string `form:"material" json:"-"`
	Color    string `form:"color" json:"-"`
	Function string `form:"function" json:"-"`
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r CreateSubmissionRequest) MaterialTags() []string { return splitTags(r.Material) }
func (r CreateSubmissionRequest) ColorTags() []string    { return splitTags(r.Color) }
func (r CreateSubmissionRequest) FunctionTags() []string { return splitTags(r.Function) }

func (r CreateSubmissionRequest) ToModel() model.SubmissionModel {
	return model.SubmissionModel{
		SubmissionStatus:      model.SubmissionStatusPending,
		SubmissionTitle:       strings.TrimSpace(r.Title),
		SubmissionDescription: strings.TrimSpace(r.Description),
		SubmissionMaterial:    r.MaterialTags(),
		SubmissionColor:       r.ColorTags(),
		SubmissionFunction:    r.FunctionTags(),
		SubmissionFirstName:   strings.TrimSpace(r.FirstName),
		SubmissionLastName:    strings.TrimSpace(r.LastName),
		SubmissionEmail:       strings.TrimSpace(r.Email),
		SubmissionGradeLevel:  strings.TrimSpace(r.GradeLevel),
	}
}

// ValidateTagSets checks every supplied tag value against its controlled
// vocabulary and duplicates within a set.
func ValidateTagSets(material, color, function []string) error {
	sets := []struct {
		category string
		values   []string
	}{
		{constants.TagCategoryMaterial, material},
		{constants.TagCategoryColor, color},
		{constants.TagCategoryFunction, function},
	}
	for _, s := range sets {
		seen := map[string]bool{}
		for _, v := range s.values {
			if !constants.IsAllowedTag(s.category, v) {
				return fmt.Errorf("%s: %q is not an allowed value", s.category, v)
			}
			if seen[v] {
				return fmt.Errorf("%s: %q appears more than once", s.category, v)
			}
			seen[v] = true
		}
	}
	return nil
}

//
// =========================================================
// RESPONSE DTOs
// =========================================================
//

type SubmissionResponse struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Material    []string  `json:"material"`
	Color       []string  `json:"color"`
	Function    []string  `json:"function"`
	ImageURLs   []string  `json:"imageUrls"`
	PDFURL      *string   `json:"pdfUrl,omitempty"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	GradeLevel  string    `json:"gradeLevel"`
	CreatedAt   string    `json:"createdAt"`
}

func FromModel(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		ID:          m.SubmissionID,
		Status:      string(m.SubmissionStatus),
		Title:       m.SubmissionTitle,
		Description: m.SubmissionDescription,
		Material:    emptyIfNil(m.SubmissionMaterial),
		Color:       emptyIfNil(m.SubmissionColor),
		Function:    emptyIfNil(m.SubmissionFunction),
		ImageURLs:   emptyIfNil(m.SubmissionImageURLs),
		PDFURL:      m.SubmissionPDFURL,
		FirstName:   m.SubmissionFirstName,
		LastName:    m.SubmissionLastName,
		Email:       m.SubmissionEmail,
		GradeLevel:  m.SubmissionGradeLevel,
		CreatedAt:   m.SubmissionCreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func FromModels(ms []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}

// PublicFromModel hides submitter identity on the public gallery.
func PublicFromModel(m *model.SubmissionModel) SubmissionResponse {
	r := FromModel(m)
	r.FirstName = ""
	r.LastName = ""
	r.Email = ""
	return r
}

func PublicFromModels(ms []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, PublicFromModel(&ms[i]))
	}
	return out
}
