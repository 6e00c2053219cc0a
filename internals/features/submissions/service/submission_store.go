// file: internals/features/submissions/service/submission_store.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "iagallery_backend/internals/features/submissions/model"
	moderation "iagallery_backend/internals/features/submissions/moderation"
	helperOSS "iagallery_backend/internals/helpers/oss"
)

// SubmissionStore is the Postgres + OSS implementation of the moderation
// store contract.
type SubmissionStore struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewSubmissionStore(db *gorm.DB, blob helperOSS.BlobService) *SubmissionStore {
	return &SubmissionStore{DB: db, Blob: blob}
}

var _ moderation.Store = (*SubmissionStore)(nil)

func (s *SubmissionStore) ListByStatus(ctx context.Context, status model.SubmissionStatus) ([]model.SubmissionModel, error) {
	var items []model.SubmissionModel
	err := s.DB.WithContext(ctx).
		Where("submission_status = ?", status).
		Order("submission_created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *SubmissionStore) GetByID(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubmissionStore) UpdateFields(ctx context.Context, id uuid.UUID, fields moderation.Fields) error {
	upd := map[string]any{}
	if fields.Status != nil {
		upd["submission_status"] = *fields.Status
	}
	if fields.Title != nil {
		upd["submission_title"] = *fields.Title
	}
	if fields.Description != nil {
		upd["submission_description"] = *fields.Description
	}
	if fields.Material != nil {
		upd["submission_material"] = pq.StringArray(*fields.Material)
	}
	if fields.Color != nil {
		upd["submission_color"] = pq.StringArray(*fields.Color)
	}
	if fields.Function != nil {
		upd["submission_function"] = pq.StringArray(*fields.Function)
	}
	if fields.ImageURLs != nil {
		upd["submission_image_urls"] = datatypes.NewJSONSlice(*fields.ImageURLs)
	}
	if len(upd) == 0 {
		return nil
	}

	res := s.DB.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("submission_id = ?", id).
		Updates(upd)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *SubmissionStore) DeleteBlob(ctx context.Context, publicURL string) error {
	return s.Blob.DeleteByPublicURL(ctx, publicURL)
}

// DeleteRecord removes the row for good (the soft-delete scope does not
// apply to permanent deletes).
func (s *SubmissionStore) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Unscoped().
		Where("submission_id = ?", id).
		Delete(&model.SubmissionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveImageFromRecord persists the shortened list first (the row is the
// source of truth), then deletes the blob best-effort — an orphaned object
// is logged, a half-updated record is not acceptable.
func (s *SubmissionStore) RemoveImageFromRecord(ctx context.Context, id uuid.UUID, imageURL string) ([]string, error) {
	var sub model.SubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return nil, err
	}

	newList := make([]string, 0, len(sub.SubmissionImageURLs))
	found := false
	for _, u := range sub.SubmissionImageURLs {
		if u == imageURL {
			found = true
			continue
		}
		newList = append(newList, u)
	}
	if !found {
		return nil, errors.New("image url is not on this submission")
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("submission_id = ?", id).
		Update("submission_image_urls", datatypes.NewJSONSlice(newList)).Error; err != nil {
		return nil, err
	}

	if err := s.Blob.DeleteByPublicURL(ctx, imageURL); err != nil {
		log.Printf("[STORE] image blob delete failed (record updated) id=%s url=%s err=%v", id, imageURL, err)
	}
	return newList, nil
}
