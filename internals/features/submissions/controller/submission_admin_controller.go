// file: internals/features/submissions/controller/submission_admin_controller.go
package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"iagallery_backend/internals/constants"
	dto "iagallery_backend/internals/features/submissions/dto"
	model "iagallery_backend/internals/features/submissions/model"
	moderation "iagallery_backend/internals/features/submissions/moderation"
	helper "iagallery_backend/internals/helpers"
)

type AdminSubmissionController struct {
	Dashboard *moderation.Dashboard
	Validator *validator.Validate
}

func NewAdminSubmissionController(dashboard *moderation.Dashboard) *AdminSubmissionController {
	return &AdminSubmissionController{
		Dashboard: dashboard,
		Validator: validator.New(),
	}
}

// moderationError maps core errors onto HTTP statuses. *fiber.Error from
// the blob layer passes through untouched.
func moderationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, moderation.ErrMissingID),
		errors.Is(err, moderation.ErrNotConfirmed),
		errors.Is(err, moderation.ErrInvalidTransition),
		errors.Is(err, moderation.ErrUnknownTag),
		errors.Is(err, moderation.ErrDuplicateImage),
		errors.Is(err, moderation.ErrNotEditable):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, moderation.ErrNoSession):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, moderation.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	default:
		return helper.FromFiberError(c, err)
	}
}

/* =========================
   Listing
========================= */

// GET /api/a/submissions?status=pending|approved|rejected
func (ctrl *AdminSubmissionController) List(c *fiber.Ctx) error {
	status := model.SubmissionStatus(strings.TrimSpace(c.Query("status", string(model.SubmissionStatusPending))))
	if !status.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "status must be pending, approved or rejected")
	}
	if err := ctrl.Dashboard.Refresh(c.UserContext(), status); err != nil {
		return moderationError(c, err)
	}
	items := ctrl.Dashboard.Collection(status)
	return helper.JsonOK(c, "", dto.FromModels(items))
}

/* =========================
   Status transitions
========================= */

func (ctrl *AdminSubmissionController) runAction(c *fiber.Ctx, op func(context.Context, uuid.UUID) error, okMsg string) error {
	var body dto.SubmissionActionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing submission ID")
	}
	if err := op(c.UserContext(), body.ID); err != nil {
		return moderationError(c, err)
	}
	return helper.JsonOK(c, okMsg, fiber.Map{"id": body.ID})
}

// POST /api/a/submissions/approve
func (ctrl *AdminSubmissionController) Approve(c *fiber.Ctx) error {
	return ctrl.runAction(c, ctrl.Dashboard.Approve, "Submission approved")
}

// POST /api/a/submissions/reject
func (ctrl *AdminSubmissionController) Reject(c *fiber.Ctx) error {
	return ctrl.runAction(c, ctrl.Dashboard.Reject, "Submission rejected")
}

// POST /api/a/submissions/move-to-pending
func (ctrl *AdminSubmissionController) MoveToPending(c *fiber.Ctx) error {
	return ctrl.runAction(c, ctrl.Dashboard.MoveToPending, "Submission moved back to pending")
}

// POST /api/a/submissions/delete
func (ctrl *AdminSubmissionController) PermanentDelete(c *fiber.Ctx) error {
	return ctrl.runAction(c, ctrl.Dashboard.PermanentDelete, "Submission permanently deleted")
}

/* =========================
   Metadata edit
========================= */

// POST /api/a/submissions/update
//
// One-shot edit: open a session on the record, replay the payload through
// the session ops (tag changes become toggles via set difference), save.
// The session is closed either way — the stateful draft lives in the panel,
// not across admin HTTP requests.
func (ctrl *AdminSubmissionController) Update(c *fiber.Ctx) error {
	var body dto.UpdateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := dto.ValidateTagSets(body.Material, body.Color, body.Function); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	d := ctrl.Dashboard
	if err := d.BeginEdit(c.UserContext(), body.ID); err != nil {
		return moderationError(c, err)
	}

	err := func() error {
		if err := d.SetTitle(body.Title); err != nil {
			return err
		}
		if err := d.SetDescription(body.Description); err != nil {
			return err
		}
		sess := d.Session()
		for category, want := range map[string][]string{
			constants.TagCategoryMaterial: body.Material,
			constants.TagCategoryColor:    body.Color,
			constants.TagCategoryFunction: body.Function,
		} {
			have := sess.Draft.Material
			switch category {
			case constants.TagCategoryColor:
				have = sess.Draft.Color
			case constants.TagCategoryFunction:
				have = sess.Draft.Function
			}
			for _, v := range moderation.DiffTags(have, want) {
				if err := d.ToggleTag(category, v); err != nil {
					return err
				}
			}
		}
		if body.ImageURLs != nil {
			if err := d.SetDraftImages(body.ImageURLs); err != nil {
				return err
			}
		}
		return d.Save(c.UserContext())
	}()
	if err != nil {
		d.Cancel()
		return moderationError(c, err)
	}

	return helper.JsonUpdated(c, "Submission updated", fiber.Map{
		"id":          body.ID,
		"title":       body.Title,
		"description": body.Description,
		"material":    body.Material,
		"color":       body.Color,
		"function":    body.Function,
		"imageUrls":   body.ImageURLs,
	})
}

// POST /api/a/submissions/delete-image
//
// Immediate (not deferred to save): the image is removed remotely and from
// the list entry right away. Returns the new image list.
func (ctrl *AdminSubmissionController) DeleteImage(c *fiber.Ctx) error {
	var body dto.DeleteImageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	d := ctrl.Dashboard
	if err := d.BeginEdit(c.UserContext(), body.ID); err != nil {
		return moderationError(c, err)
	}
	if err := d.DeleteImage(c.UserContext(), body.ImageURL); err != nil {
		d.Cancel()
		return moderationError(c, err)
	}
	sess := d.Session()
	d.Cancel() // deletion already committed; nothing else to save

	return helper.JsonOK(c, "Image deleted", fiber.Map{
		"id":        body.ID,
		"imageUrls": sess.Draft.ImageURLs,
	})
}

/* =========================
   Image reorder (local list order, persisted on update)
========================= */

// POST /api/a/submissions/move-image  {id, imageUrl, direction}
func (ctrl *AdminSubmissionController) MoveImage(c *fiber.Ctx) error {
	var body struct {
		ID        uuid.UUID `json:"id" validate:"required"`
		ImageURL  string    `json:"imageUrl" validate:"required"`
		Direction string    `json:"direction" validate:"required,oneof=up down"`
		Password  string    `json:"password,omitempty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.Dashboard.MoveImage(body.ID, body.ImageURL, moderation.Direction(body.Direction)); err != nil {
		return moderationError(c, err)
	}
	return helper.JsonOK(c, "Image order updated", fiber.Map{"id": body.ID})
}
