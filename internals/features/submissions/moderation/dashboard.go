// file: internals/features/submissions/moderation/dashboard.go
package moderation

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"iagallery_backend/internals/constants"
	model "iagallery_backend/internals/features/submissions/model"
)

// ConfirmFunc gates every status transition. The HTTP layer supplies one
// that returns true (the operator already clicked through the panel's
// confirm dialog); a nil/refusing func means no transition ever fires.
type ConfirmFunc func(action Action, s *model.SubmissionModel) bool

/*
Dashboard owns the three status-partitioned collections and the optional
open edit session. It is the only mutator of that state; one mutex
serializes operations so a remote call always runs to completion before
local state changes. Local lists are touched only after remote success —
on failure everything is left exactly as before the attempt.
*/
type Dashboard struct {
	mu      sync.Mutex
	store   Store
	confirm ConfirmFunc

	cols    map[model.SubmissionStatus][]model.SubmissionModel
	loaded  map[model.SubmissionStatus]bool
	session *EditSession
}

func NewDashboard(store Store, confirm ConfirmFunc) *Dashboard {
	return &Dashboard{
		store:   store,
		confirm: confirm,
		cols:    map[model.SubmissionStatus][]model.SubmissionModel{},
		loaded:  map[model.SubmissionStatus]bool{},
	}
}

/* =========================
   Collections
========================= */

// Refresh replaces one collection from the store.
func (d *Dashboard) Refresh(ctx context.Context, status model.SubmissionStatus) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refreshLocked(ctx, status)
}

func (d *Dashboard) refreshLocked(ctx context.Context, status model.SubmissionStatus) error {
	items, err := d.store.ListByStatus(ctx, status)
	if err != nil {
		return err
	}
	d.cols[status] = items
	d.loaded[status] = true
	return nil
}

func (d *Dashboard) ensureLoaded(ctx context.Context, statuses ...model.SubmissionStatus) error {
	for _, st := range statuses {
		if d.loaded[st] {
			continue
		}
		if err := d.refreshLocked(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Collection returns a copy of one status list.
func (d *Dashboard) Collection(status model.SubmissionStatus) []model.SubmissionModel {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.SubmissionModel(nil), d.cols[status]...)
}

func (d *Dashboard) findLocked(status model.SubmissionStatus, id uuid.UUID) (int, *model.SubmissionModel) {
	list := d.cols[status]
	for i := range list {
		if list[i].SubmissionID == id {
			return i, &list[i]
		}
	}
	return -1, nil
}

// removeByID: postcondition — no record with this id remains in the list.
func (d *Dashboard) removeByIDLocked(status model.SubmissionStatus, id uuid.UUID) {
	list := d.cols[status]
	out := list[:0]
	for i := range list {
		if list[i].SubmissionID != id {
			out = append(out, list[i])
		}
	}
	d.cols[status] = out
}

/* =========================
   Status transitions
========================= */

// Approve: pending → approved.
func (d *Dashboard) Approve(ctx context.Context, id uuid.UUID) error {
	return d.transition(ctx, id, ActionApprove, model.SubmissionStatusPending)
}

// Reject: pending → rejected.
func (d *Dashboard) Reject(ctx context.Context, id uuid.UUID) error {
	return d.transition(ctx, id, ActionReject, model.SubmissionStatusPending)
}

// MoveToPending: approved|rejected → pending.
func (d *Dashboard) MoveToPending(ctx context.Context, id uuid.UUID) error {
	return d.transition(ctx, id, ActionMoveToPending,
		model.SubmissionStatusApproved, model.SubmissionStatusRejected)
}

func (d *Dashboard) transition(ctx context.Context, id uuid.UUID, action Action, sources ...model.SubmissionStatus) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id == uuid.Nil {
		return ErrMissingID
	}
	if err := d.ensureLoaded(ctx, sources...); err != nil {
		return err
	}

	var (
		from model.SubmissionStatus
		rec  *model.SubmissionModel
	)
	for _, st := range sources {
		if _, r := d.findLocked(st, id); r != nil {
			from, rec = st, r
			break
		}
	}
	if rec == nil {
		return ErrNotFound
	}

	to, ok := TransitionTarget(from, action)
	if !ok {
		return ErrInvalidTransition
	}
	if d.confirm == nil || !d.confirm(action, rec) {
		return ErrNotConfirmed
	}

	if err := d.store.UpdateFields(ctx, id, Fields{Status: &to}); err != nil {
		return err
	}

	// Remote success: eager local move — drop from the source list and
	// insert at the head of the destination so the panel never shows the
	// lazy-refresh gap.
	moved := *rec
	moved.SubmissionStatus = to
	d.removeByIDLocked(from, id)
	d.cols[to] = append([]model.SubmissionModel{moved}, d.cols[to]...)
	return nil
}

// PermanentDelete: rejected → gone. Blobs first (best effort, logged and
// skipped on failure), then the row. Only the row delete can fail the op.
func (d *Dashboard) PermanentDelete(ctx context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id == uuid.Nil {
		return ErrMissingID
	}
	if err := d.ensureLoaded(ctx, model.SubmissionStatusRejected); err != nil {
		return err
	}
	_, rec := d.findLocked(model.SubmissionStatusRejected, id)
	if rec == nil {
		return ErrNotFound
	}
	if d.confirm == nil || !d.confirm(ActionPermanentDelete, rec) {
		return ErrNotConfirmed
	}

	// Fresh fetch so we cascade over the stored file list, not the cached one.
	fresh, err := d.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	for _, u := range fresh.AllBlobURLs() {
		if err := d.store.DeleteBlob(ctx, u); err != nil {
			log.Printf("[MODERATION] blob cleanup failed (continuing) id=%s url=%s err=%v", id, u, err)
		}
	}

	if err := d.store.DeleteRecord(ctx, id); err != nil {
		return err
	}

	d.removeByIDLocked(model.SubmissionStatusRejected, id)
	if d.session != nil && d.session.ID == id {
		d.session = nil
	}
	return nil
}

/* =========================
   Edit session
========================= */

// BeginEdit snapshots the record's editable fields into a new draft.
// Any previously open session is abandoned, no merge.
func (d *Dashboard) BeginEdit(ctx context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id == uuid.Nil {
		return ErrMissingID
	}
	if err := d.ensureLoaded(ctx,
		model.SubmissionStatusPending,
		model.SubmissionStatusApproved,
		model.SubmissionStatusRejected,
	); err != nil {
		return err
	}

	for _, st := range []model.SubmissionStatus{model.SubmissionStatusPending, model.SubmissionStatusApproved} {
		if _, rec := d.findLocked(st, id); rec != nil {
			d.session = &EditSession{ID: id, Status: st, Draft: draftFrom(rec)}
			return nil
		}
	}
	if _, rec := d.findLocked(model.SubmissionStatusRejected, id); rec != nil {
		return ErrNotEditable
	}
	return ErrNotFound
}

// Session returns a copy of the open session, or nil.
func (d *Dashboard) Session() *EditSession {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return nil
	}
	s := *d.session
	s.Draft = cloneDraft(d.session.Draft)
	return &s
}

func cloneDraft(in Draft) Draft {
	return Draft{
		Title:       in.Title,
		Description: in.Description,
		Material:    append([]string(nil), in.Material...),
		Color:       append([]string(nil), in.Color...),
		Function:    append([]string(nil), in.Function...),
		ImageURLs:   append([]string(nil), in.ImageURLs...),
	}
}

func (d *Dashboard) SetTitle(v string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return ErrNoSession
	}
	d.session.Draft.Title = v
	return nil
}

func (d *Dashboard) SetDescription(v string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return ErrNoSession
	}
	d.session.Draft.Description = v
	return nil
}

// ToggleTag flips one vocabulary value in the draft's category set.
// Values outside the controlled vocabulary are rejected, not toggled.
func (d *Dashboard) ToggleTag(category, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return ErrNoSession
	}
	if !constants.IsAllowedTag(category, value) {
		return ErrUnknownTag
	}
	set := d.session.Draft.tagSet(category)
	if set == nil {
		return ErrUnknownTag
	}
	*set = toggleTag(*set, value)
	return nil
}

// SetDraftImages replaces the draft's image order wholesale (one-shot
// update path). Duplicates are invalid.
func (d *Dashboard) SetDraftImages(urls []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return ErrNoSession
	}
	if hasDuplicates(urls) {
		return ErrDuplicateImage
	}
	d.session.Draft.ImageURLs = append([]string(nil), urls...)
	return nil
}

/* =========================
   Image list maintenance
========================= */

// MoveImage swaps the URL with its neighbor in the displayed list
// immediately (instant feedback, persisted only on save), and mirrors the
// swap into the draft when a session is open for the same record.
// Boundary moves and unknown URLs are no-ops.
func (d *Dashboard) MoveImage(id uuid.UUID, imageURL string, dir Direction) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id == uuid.Nil {
		return ErrMissingID
	}
	var rec *model.SubmissionModel
	for _, st := range []model.SubmissionStatus{model.SubmissionStatusPending, model.SubmissionStatusApproved} {
		if _, r := d.findLocked(st, id); r != nil {
			rec = r
			break
		}
	}
	if rec == nil {
		return ErrNotFound
	}

	rec.SubmissionImageURLs = moveAdjacent(rec.SubmissionImageURLs, imageURL, dir)
	if d.session != nil && d.session.ID == id {
		d.session.Draft.ImageURLs = moveAdjacent(d.session.Draft.ImageURLs, imageURL, dir)
	}
	return nil
}

// DeleteImage removes one URL remotely, then from both the draft and the
// authoritative list entry. Requires an open session; on remote failure
// nothing local changes.
func (d *Dashboard) DeleteImage(ctx context.Context, imageURL string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.session == nil {
		return ErrNoSession
	}
	newList, err := d.store.RemoveImageFromRecord(ctx, d.session.ID, imageURL)
	if err != nil {
		return err
	}

	d.session.Draft.ImageURLs = append([]string(nil), newList...)
	if _, rec := d.findLocked(d.session.Status, d.session.ID); rec != nil {
		rec.SubmissionImageURLs = append([]string(nil), newList...)
	}
	return nil
}

/* =========================
   Save / Cancel
========================= */

// Save sends the whole draft in one call. On success the matching list
// entry's editable fields are replaced and the session closes; on failure
// the session stays open with the draft intact for a retry.
func (d *Dashboard) Save(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.session == nil {
		return ErrNoSession
	}
	dr := d.session.Draft
	fields := Fields{
		Title:       &dr.Title,
		Description: &dr.Description,
		Material:    &dr.Material,
		Color:       &dr.Color,
		Function:    &dr.Function,
		ImageURLs:   &dr.ImageURLs,
	}
	if err := d.store.UpdateFields(ctx, d.session.ID, fields); err != nil {
		return err
	}

	// replaceByID: postcondition — the entry matching the session id in the
	// session's status list carries the draft's editable fields.
	if _, rec := d.findLocked(d.session.Status, d.session.ID); rec != nil {
		rec.SubmissionTitle = dr.Title
		rec.SubmissionDescription = dr.Description
		rec.SubmissionMaterial = append([]string(nil), dr.Material...)
		rec.SubmissionColor = append([]string(nil), dr.Color...)
		rec.SubmissionFunction = append([]string(nil), dr.Function...)
		rec.SubmissionImageURLs = append([]string(nil), dr.ImageURLs...)
	}
	d.session = nil
	return nil
}

// Cancel discards the draft without any remote call. Image deletions and
// reorders already applied during the session are not undone.
func (d *Dashboard) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session = nil
}
