// file: internals/features/submissions/moderation/store.go
package moderation

import (
	"context"

	"github.com/google/uuid"

	model "iagallery_backend/internals/features/submissions/model"
)

// Fields is the partial-update payload for UpdateFields. Nil means "leave
// the column alone"; a non-nil pointer always writes, including empty
// slices (clearing a tag set is a real update).
type Fields struct {
	Status      *model.SubmissionStatus
	Title       *string
	Description *string
	Material    *[]string
	Color       *[]string
	Function    *[]string
	ImageURLs   *[]string
}

// Store is the persistence contract the dashboard runs against. Every call
// reports success/failure distinguishably; DeleteBlob failures must never
// prevent later calls in a cascade.
type Store interface {
	ListByStatus(ctx context.Context, status model.SubmissionStatus) ([]model.SubmissionModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteBlob(ctx context.Context, publicURL string) error
	DeleteRecord(ctx context.Context, id uuid.UUID) error

	// RemoveImageFromRecord drops one URL from the record's image list and
	// returns the new list as persisted.
	RemoveImageFromRecord(ctx context.Context, id uuid.UUID, imageURL string) ([]string, error)
}
