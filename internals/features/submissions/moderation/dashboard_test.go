package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	model "iagallery_backend/internals/features/submissions/model"
)

type updateCall struct {
	id     uuid.UUID
	fields Fields
}

type mockStore struct {
	byStatus map[model.SubmissionStatus][]model.SubmissionModel

	updateErr error
	updates   []updateCall

	blobErrs    map[string]error
	blobDeletes []string

	recordDeleteErr error
	recordDeletes   []uuid.UUID

	removeImageResult []string
	removeImageErr    error
	removeImageCalls  int

	getByIDErr error
}

func (m *mockStore) ListByStatus(ctx context.Context, status model.SubmissionStatus) ([]model.SubmissionModel, error) {
	return append([]model.SubmissionModel(nil), m.byStatus[status]...), nil
}

func (m *mockStore) GetByID(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	for _, list := range m.byStatus {
		for i := range list {
			if list[i].SubmissionID == id {
				rec := list[i]
				return &rec, nil
			}
		}
	}
	return nil, errors.New("not found")
}

func (m *mockStore) UpdateFields(ctx context.Context, id uuid.UUID, fields Fields) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, updateCall{id: id, fields: fields})
	return nil
}

func (m *mockStore) DeleteBlob(ctx context.Context, publicURL string) error {
	if err, ok := m.blobErrs[publicURL]; ok {
		return err
	}
	m.blobDeletes = append(m.blobDeletes, publicURL)
	return nil
}

func (m *mockStore) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if m.recordDeleteErr != nil {
		return m.recordDeleteErr
	}
	m.recordDeletes = append(m.recordDeletes, id)
	return nil
}

func (m *mockStore) RemoveImageFromRecord(ctx context.Context, id uuid.UUID, imageURL string) ([]string, error) {
	m.removeImageCalls++
	if m.removeImageErr != nil {
		return nil, m.removeImageErr
	}
	return append([]string(nil), m.removeImageResult...), nil
}

func confirmAll(Action, *model.SubmissionModel) bool { return true }

func newRecord(status model.SubmissionStatus, title string, images ...string) model.SubmissionModel {
	return model.SubmissionModel{
		SubmissionID:        uuid.New(),
		SubmissionStatus:    status,
		SubmissionTitle:     title,
		SubmissionMaterial:  []string{"Wood"},
		SubmissionImageURLs: images,
	}
}

func newDashboard(store Store) *Dashboard {
	return NewDashboard(store, confirmAll)
}

/* =========================
   Status transitions
========================= */

func TestApproveMovesRecordBetweenCollections(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Lamp")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusPending: {rec},
	}}
	d := newDashboard(store)

	if err := d.Approve(context.Background(), rec.SubmissionID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if len(store.updates) != 1 {
		t.Fatalf("expected 1 store update, got %d", len(store.updates))
	}
	if st := store.updates[0].fields.Status; st == nil || *st != model.SubmissionStatusApproved {
		t.Fatalf("expected status update to approved, got %v", st)
	}
	if got := d.Collection(model.SubmissionStatusPending); len(got) != 0 {
		t.Fatalf("pending should be empty, got %d", len(got))
	}
	approved := d.Collection(model.SubmissionStatusApproved)
	if len(approved) != 1 || approved[0].SubmissionID != rec.SubmissionID {
		t.Fatalf("approved should hold the moved record")
	}
	if approved[0].SubmissionStatus != model.SubmissionStatusApproved {
		t.Fatalf("moved record should carry the new status")
	}
}

func TestTransitionFailureLeavesCollectionsUntouched(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Lamp")
	store := &mockStore{
		byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
			model.SubmissionStatusPending: {rec},
		},
		updateErr: errors.New("boom"),
	}
	d := newDashboard(store)

	if err := d.Reject(context.Background(), rec.SubmissionID); err == nil {
		t.Fatal("expected remote failure to surface")
	}
	if got := d.Collection(model.SubmissionStatusPending); len(got) != 1 {
		t.Fatalf("pending must be untouched on failure, got %d", len(got))
	}
	if got := d.Collection(model.SubmissionStatusRejected); len(got) != 0 {
		t.Fatalf("rejected must be untouched on failure, got %d", len(got))
	}
}

func TestMoveToPendingFromBothSources(t *testing.T) {
	appr := newRecord(model.SubmissionStatusApproved, "A")
	rej := newRecord(model.SubmissionStatusRejected, "R")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusApproved: {appr},
		model.SubmissionStatusRejected: {rej},
	}}
	d := newDashboard(store)

	for _, id := range []uuid.UUID{appr.SubmissionID, rej.SubmissionID} {
		if err := d.MoveToPending(context.Background(), id); err != nil {
			t.Fatalf("move-to-pending: %v", err)
		}
	}
	if got := d.Collection(model.SubmissionStatusPending); len(got) != 2 {
		t.Fatalf("pending should hold both records, got %d", len(got))
	}
}

func TestTransitionGuards(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Lamp")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusPending: {rec},
	}}

	d := newDashboard(store)
	if err := d.Approve(context.Background(), uuid.Nil); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if err := d.Approve(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Unconfirmed: no remote call may fire.
	noConfirm := NewDashboard(store, func(Action, *model.SubmissionModel) bool { return false })
	if err := noConfirm.Approve(context.Background(), rec.SubmissionID); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if len(store.updates) != 0 {
		t.Fatalf("unconfirmed transition must not hit the store")
	}
}

/* =========================
   Permanent delete
========================= */

func TestPermanentDeleteCascadesBestEffort(t *testing.T) {
	pdf := "https://cdn.example.com/submissions/pdfs/doc.pdf"
	rec := newRecord(model.SubmissionStatusRejected, "Gone",
		"https://cdn.example.com/submissions/images/a.webp",
		"https://cdn.example.com/submissions/images/b.webp",
	)
	rec.SubmissionPDFURL = &pdf

	store := &mockStore{
		byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
			model.SubmissionStatusRejected: {rec},
		},
		blobErrs: map[string]error{pdf: errors.New("object locked")},
	}
	d := newDashboard(store)

	if err := d.PermanentDelete(context.Background(), rec.SubmissionID); err != nil {
		t.Fatalf("permanent delete must succeed despite a blob failure: %v", err)
	}
	if len(store.blobDeletes) != 2 {
		t.Fatalf("both image blobs should be deleted, got %v", store.blobDeletes)
	}
	if len(store.recordDeletes) != 1 || store.recordDeletes[0] != rec.SubmissionID {
		t.Fatalf("row delete must still run")
	}
	if got := d.Collection(model.SubmissionStatusRejected); len(got) != 0 {
		t.Fatalf("record should leave the rejected collection")
	}
}

func TestPermanentDeleteOnlyFromRejected(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Still here")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusPending: {rec},
	}}
	d := newDashboard(store)

	if err := d.PermanentDelete(context.Background(), rec.SubmissionID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-rejected record, got %v", err)
	}
	if len(store.recordDeletes) != 0 {
		t.Fatal("no row delete may run")
	}
}

func TestPermanentDeleteRowFailureKeepsRecordListed(t *testing.T) {
	rec := newRecord(model.SubmissionStatusRejected, "Sticky")
	store := &mockStore{
		byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
			model.SubmissionStatusRejected: {rec},
		},
		recordDeleteErr: errors.New("fk violation"),
	}
	d := newDashboard(store)

	if err := d.PermanentDelete(context.Background(), rec.SubmissionID); err == nil {
		t.Fatal("expected row delete failure to surface")
	}
	if got := d.Collection(model.SubmissionStatusRejected); len(got) != 1 {
		t.Fatal("record must stay in the rejected collection on failure")
	}
}

/* =========================
   Edit session
========================= */

func seededDashboard(t *testing.T, rec model.SubmissionModel) (*Dashboard, *mockStore) {
	t.Helper()
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		rec.SubmissionStatus: {rec},
	}}
	d := newDashboard(store)
	if err := d.BeginEdit(context.Background(), rec.SubmissionID); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	return d, store
}

func TestTagToggleInvolution(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Lamp")
	rec.SubmissionMaterial = []string{"Wood"}
	d, _ := seededDashboard(t, rec)

	if err := d.ToggleTag("material", "Glass"); err != nil {
		t.Fatalf("toggle add: %v", err)
	}
	got := d.Session().Draft.Material
	if len(got) != 2 || got[0] != "Wood" || got[1] != "Glass" {
		t.Fatalf("expected [Wood Glass], got %v", got)
	}

	if err := d.ToggleTag("material", "Wood"); err != nil {
		t.Fatalf("toggle remove: %v", err)
	}
	got = d.Session().Draft.Material
	if len(got) != 1 || got[0] != "Glass" {
		t.Fatalf("expected [Glass], got %v", got)
	}

	// Involution: toggling the same value twice restores the set.
	before := d.Session().Draft.Color
	_ = d.ToggleTag("color", "Red")
	_ = d.ToggleTag("color", "Red")
	after := d.Session().Draft.Color
	if len(before) != len(after) {
		t.Fatalf("double toggle must restore the set: %v vs %v", before, after)
	}
}

func TestToggleRejectsUnknownValues(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Lamp")
	d, _ := seededDashboard(t, rec)

	if err := d.ToggleTag("material", "Adamantium"); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
	if err := d.ToggleTag("shape", "Round"); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag for unknown category, got %v", err)
	}
}

func TestBeginEditRejectedIsNotEditable(t *testing.T) {
	rec := newRecord(model.SubmissionStatusRejected, "No edits")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusRejected: {rec},
	}}
	d := newDashboard(store)

	if err := d.BeginEdit(context.Background(), rec.SubmissionID); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("expected ErrNotEditable, got %v", err)
	}
}

func TestSecondSessionAbandonsFirst(t *testing.T) {
	a := newRecord(model.SubmissionStatusPending, "First")
	b := newRecord(model.SubmissionStatusPending, "Second")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusPending: {a, b},
	}}
	d := newDashboard(store)

	if err := d.BeginEdit(context.Background(), a.SubmissionID); err != nil {
		t.Fatal(err)
	}
	_ = d.SetTitle("changed but never saved")
	if err := d.BeginEdit(context.Background(), b.SubmissionID); err != nil {
		t.Fatal(err)
	}
	sess := d.Session()
	if sess.ID != b.SubmissionID || sess.Draft.Title != "Second" {
		t.Fatalf("new session must snapshot the new record, got %+v", sess)
	}
}

/* =========================
   Image list maintenance
========================= */

func TestMoveImageSwapsAdjacent(t *testing.T) {
	rec := newRecord(model.SubmissionStatusApproved, "Pics", "A", "B", "C")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusApproved: {rec},
	}}
	d := newDashboard(store)
	if err := d.Refresh(context.Background(), model.SubmissionStatusApproved); err != nil {
		t.Fatal(err)
	}

	if err := d.MoveImage(rec.SubmissionID, "B", DirectionUp); err != nil {
		t.Fatal(err)
	}
	got := d.Collection(model.SubmissionStatusApproved)[0].SubmissionImageURLs
	if got[0] != "B" || got[1] != "A" || got[2] != "C" {
		t.Fatalf("expected [B A C], got %v", got)
	}

	if err := d.MoveImage(rec.SubmissionID, "C", DirectionUp); err != nil {
		t.Fatal(err)
	}
	got = d.Collection(model.SubmissionStatusApproved)[0].SubmissionImageURLs
	if got[0] != "B" || got[1] != "C" || got[2] != "A" {
		t.Fatalf("expected [B C A], got %v", got)
	}
}

func TestMoveImageBoundariesAreNoOps(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Pics", "A", "B", "C")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusPending: {rec},
	}}
	d := newDashboard(store)
	if err := d.Refresh(context.Background(), model.SubmissionStatusPending); err != nil {
		t.Fatal(err)
	}

	_ = d.MoveImage(rec.SubmissionID, "A", DirectionUp)
	_ = d.MoveImage(rec.SubmissionID, "C", DirectionDown)
	_ = d.MoveImage(rec.SubmissionID, "Z", DirectionUp) // absent URL

	got := d.Collection(model.SubmissionStatusPending)[0].SubmissionImageURLs
	if len(got) != 3 || got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Fatalf("boundary moves must not change the list, got %v", got)
	}
}

func TestMoveImageMirrorsIntoOpenDraft(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Pics", "A", "B", "C")
	d, _ := seededDashboard(t, rec)

	if err := d.MoveImage(rec.SubmissionID, "C", DirectionUp); err != nil {
		t.Fatal(err)
	}
	draft := d.Session().Draft.ImageURLs
	if draft[1] != "C" || draft[2] != "B" {
		t.Fatalf("draft must mirror the swap, got %v", draft)
	}
	list := d.Collection(model.SubmissionStatusPending)[0].SubmissionImageURLs
	if list[1] != "C" || list[2] != "B" {
		t.Fatalf("displayed list must swap immediately, got %v", list)
	}
}

func TestDeleteImageUpdatesDraftAndList(t *testing.T) {
	rec := newRecord(model.SubmissionStatusApproved, "Pics", "A", "B", "C")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusApproved: {rec},
	}}
	store.removeImageResult = []string{"A", "C"}
	d := newDashboard(store)
	if err := d.BeginEdit(context.Background(), rec.SubmissionID); err != nil {
		t.Fatal(err)
	}

	if err := d.DeleteImage(context.Background(), "B"); err != nil {
		t.Fatalf("delete image: %v", err)
	}
	draft := d.Session().Draft.ImageURLs
	if len(draft) != 2 || draft[0] != "A" || draft[1] != "C" {
		t.Fatalf("draft should hold [A C], got %v", draft)
	}
	list := d.Collection(model.SubmissionStatusApproved)[0].SubmissionImageURLs
	if len(list) != 2 || list[0] != "A" || list[1] != "C" {
		t.Fatalf("authoritative list should hold [A C], got %v", list)
	}
}

func TestDeleteImageFailureChangesNothing(t *testing.T) {
	rec := newRecord(model.SubmissionStatusApproved, "Pics", "A", "B", "C")
	store := &mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{
		model.SubmissionStatusApproved: {rec},
	}}
	store.removeImageErr = errors.New("storage down")
	d := newDashboard(store)
	if err := d.BeginEdit(context.Background(), rec.SubmissionID); err != nil {
		t.Fatal(err)
	}

	if err := d.DeleteImage(context.Background(), "B"); err == nil {
		t.Fatal("expected failure to surface")
	}
	if got := d.Session().Draft.ImageURLs; len(got) != 3 {
		t.Fatalf("draft must be untouched, got %v", got)
	}
	if got := d.Collection(model.SubmissionStatusApproved)[0].SubmissionImageURLs; len(got) != 3 {
		t.Fatalf("list must be untouched, got %v", got)
	}
}

func TestDeleteImageRequiresSession(t *testing.T) {
	d := newDashboard(&mockStore{byStatus: map[model.SubmissionStatus][]model.SubmissionModel{}})
	if err := d.DeleteImage(context.Background(), "A"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

/* =========================
   Save / Cancel
========================= */

func TestSaveReplacesFieldsAndClosesSession(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Old title", "A", "B")
	d, store := seededDashboard(t, rec)

	_ = d.SetTitle("New title")
	_ = d.SetDescription("New description")
	_ = d.ToggleTag("color", "Red")

	if err := d.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if d.Session() != nil {
		t.Fatal("session must close on successful save")
	}
	if len(store.updates) != 1 {
		t.Fatalf("save must be one store call, got %d", len(store.updates))
	}
	got := d.Collection(model.SubmissionStatusPending)[0]
	if got.SubmissionTitle != "New title" || got.SubmissionDescription != "New description" {
		t.Fatalf("list entry must carry the saved fields, got %+v", got)
	}
	if len(got.SubmissionColor) != 1 || got.SubmissionColor[0] != "Red" {
		t.Fatalf("saved tag set missing, got %v", got.SubmissionColor)
	}
}

func TestSaveFailureKeepsSessionOpen(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Old title")
	d, store := seededDashboard(t, rec)
	store.updateErr = errors.New("timeout")

	_ = d.SetTitle("Edited")
	if err := d.Save(context.Background()); err == nil {
		t.Fatal("expected save failure")
	}
	sess := d.Session()
	if sess == nil || sess.Draft.Title != "Edited" {
		t.Fatal("session and draft must survive a failed save for retry")
	}
	if got := d.Collection(model.SubmissionStatusPending)[0].SubmissionTitle; got != "Old title" {
		t.Fatalf("list entry must be untouched, got %q", got)
	}
}

func TestCancelDiscardsDraftOnly(t *testing.T) {
	rec := newRecord(model.SubmissionStatusPending, "Keep me", "A", "B", "C")
	d, store := seededDashboard(t, rec)

	_ = d.SetTitle("Never saved")
	_ = d.ToggleTag("material", "Glass")
	// A reorder applied during the session mutates the displayed list and
	// is not undone by cancel.
	_ = d.MoveImage(rec.SubmissionID, "B", DirectionUp)

	d.Cancel()

	if d.Session() != nil {
		t.Fatal("cancel must close the session")
	}
	if len(store.updates) != 0 {
		t.Fatal("cancel must not hit the store")
	}
	got := d.Collection(model.SubmissionStatusPending)[0]
	if got.SubmissionTitle != "Keep me" {
		t.Fatalf("title must be untouched, got %q", got.SubmissionTitle)
	}
	if got.SubmissionImageURLs[0] != "B" || got.SubmissionImageURLs[1] != "A" {
		t.Fatalf("committed reorder must persist through cancel, got %v", got.SubmissionImageURLs)
	}
}
