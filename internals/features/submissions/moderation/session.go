// file: internals/features/submissions/moderation/session.go
package moderation

import (
	"github.com/google/uuid"

	model "iagallery_backend/internals/features/submissions/model"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Draft holds the unsaved copy of a submission's editable fields.
type Draft struct {
	Title       string
	Description string
	Material    []string
	Color       []string
	Function    []string
	ImageURLs   []string
}

// EditSession scopes one open draft to one record. At most one session
// exists at a time; opening another abandons this one.
type EditSession struct {
	ID     uuid.UUID
	Status model.SubmissionStatus // status at open time; decides which list save writes back to
	Draft  Draft
}

func draftFrom(m *model.SubmissionModel) Draft {
	return Draft{
		Title:       m.SubmissionTitle,
		Description: m.SubmissionDescription,
		Material:    append([]string(nil), m.SubmissionMaterial...),
		Color:       append([]string(nil), m.SubmissionColor...),
		Function:    append([]string(nil), m.SubmissionFunction...),
		ImageURLs:   append([]string(nil), m.SubmissionImageURLs...),
	}
}

// toggleTag removes value when present, else appends it. Its own inverse
// when applied twice.
func toggleTag(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(append([]string(nil), set[:i]...), set[i+1:]...)
		}
	}
	out := append([]string(nil), set...)
	return append(out, value)
}

// tagSet returns a pointer into the draft for the named category, nil for
// an unknown one.
func (d *Draft) tagSet(category string) *[]string {
	switch category {
	case "material":
		return &d.Material
	case "color":
		return &d.Color
	case "function":
		return &d.Function
	default:
		return nil
	}
}

// moveAdjacent swaps imageURL with its neighbor in the given direction.
// No-op at either boundary or when the URL is absent. Returns a fresh slice.
func moveAdjacent(list []string, imageURL string, dir Direction) []string {
	out := append([]string(nil), list...)
	idx := -1
	for i, v := range out {
		if v == imageURL {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out
	}
	switch dir {
	case DirectionUp:
		if idx > 0 {
			out[idx], out[idx-1] = out[idx-1], out[idx]
		}
	case DirectionDown:
		if idx < len(out)-1 {
			out[idx], out[idx+1] = out[idx+1], out[idx]
		}
	}
	return out
}

// DiffTags returns the toggles that turn `old` into `new`: values to remove
// in old order, then values to add in new order. Used by the one-shot
// update endpoint so a full-set payload still goes through the toggle op.
func DiffTags(old, new []string) []string {
	inOld := make(map[string]bool, len(old))
	for _, v := range old {
		inOld[v] = true
	}
	inNew := make(map[string]bool, len(new))
	for _, v := range new {
		inNew[v] = true
	}
	var toggles []string
	for _, v := range old {
		if !inNew[v] {
			toggles = append(toggles, v)
		}
	}
	for _, v := range new {
		if !inOld[v] {
			toggles = append(toggles, v)
		}
	}
	return toggles
}

func hasDuplicates(list []string) bool {
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}
