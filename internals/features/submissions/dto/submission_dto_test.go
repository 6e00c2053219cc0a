package dto

import (
	"testing"

	model "iagallery_backend/internals/features/submissions/model"
)

func TestSplitTagsTrimsAndDropsEmpties(t *testing.T) {
	r := CreateSubmissionRequest{Material: " Wood , Glass ,, "}
	got := r.MaterialTags()
	if len(got) != 2 || got[0] != "Wood" || got[1] != "Glass" {
		t.Fatalf("expected [Wood Glass], got %v", got)
	}
	if (CreateSubmissionRequest{}).ColorTags() != nil {
		t.Fatal("empty form value should yield nil")
	}
}

func TestValidateTagSets(t *testing.T) {
	if err := ValidateTagSets([]string{"Wood", "Glass"}, []string{"Red"}, nil); err != nil {
		t.Fatalf("valid sets rejected: %v", err)
	}
	if err := ValidateTagSets([]string{"Adamantium"}, nil, nil); err == nil {
		t.Fatal("unknown material value accepted")
	}
	if err := ValidateTagSets(nil, []string{"Red", "Red"}, nil); err == nil {
		t.Fatal("duplicate value accepted")
	}
	// Value valid in one vocabulary is still invalid in another.
	if err := ValidateTagSets(nil, []string{"Wood"}, nil); err == nil {
		t.Fatal("material value accepted as color")
	}
}

func TestToModelStartsPending(t *testing.T) {
	r := CreateSubmissionRequest{
		Title:     "  Desk Lamp ",
		FirstName: "Ada",
		LastName:  "L",
		Email:     "ada@example.com",
		Material:  "Wood,Glass",
	}
	m := r.ToModel()
	if m.SubmissionStatus != model.SubmissionStatusPending {
		t.Fatalf("intake must start pending, got %s", m.SubmissionStatus)
	}
	if m.SubmissionTitle != "Desk Lamp" {
		t.Fatalf("title not trimmed: %q", m.SubmissionTitle)
	}
	if len(m.SubmissionMaterial) != 2 {
		t.Fatalf("tags not parsed: %v", m.SubmissionMaterial)
	}
}

func TestPublicFromModelHidesSubmitterIdentity(t *testing.T) {
	m := model.SubmissionModel{
		SubmissionStatus:    model.SubmissionStatusApproved,
		SubmissionTitle:     "Lamp",
		SubmissionFirstName: "Ada",
		SubmissionLastName:  "Lovelace",
		SubmissionEmail:     "ada@example.com",
	}
	r := PublicFromModel(&m)
	if r.FirstName != "" || r.LastName != "" || r.Email != "" {
		t.Fatalf("public response leaks identity: %+v", r)
	}
	if r.Title != "Lamp" {
		t.Fatal("public response dropped content fields")
	}
	if r.Material == nil || r.ImageURLs == nil {
		t.Fatal("nil slices must serialize as empty arrays")
	}
}
