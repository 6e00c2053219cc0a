// file: internals/features/submissions/controller/submission_public_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"iagallery_backend/internals/constants"
	dto "iagallery_backend/internals/features/submissions/dto"
	model "iagallery_backend/internals/features/submissions/model"
	helper "iagallery_backend/internals/helpers"
	helperOSS "iagallery_backend/internals/helpers/oss"
)

const maxIntakeImages = 6

type PublicSubmissionController struct {
	DB        *gorm.DB
	Blob      helperOSS.BlobService
	Validator *validator.Validate
}

func NewPublicSubmissionController(db *gorm.DB, blob helperOSS.BlobService) *PublicSubmissionController {
	return &PublicSubmissionController{
		DB:        db,
		Blob:      blob,
		Validator: validator.New(),
	}
}

/* =========================
   Gallery (approved only)
========================= */

// GET /api/public/gallery
func (ctrl *PublicSubmissionController) Gallery(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SubmissionModel{}).
		Where("submission_status = ?", model.SubmissionStatusApproved)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.SubmissionModel
	if err := q.
		Order("submission_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.PublicFromModels(items), &p)
}

// GET /api/public/gallery/:id
func (ctrl *PublicSubmissionController) GalleryItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var sub model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sub, "submission_id = ? AND submission_status = ?", id, model.SubmissionStatusApproved).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.PublicFromModel(&sub))
}

/* =========================
   Intake
========================= */

// POST /api/public/submissions (multipart/form-data)
//
// Fields per CreateSubmissionRequest, plus file parts: "images" (1..6,
// re-encoded to WebP) and optional "pdf". The record always enters the
// queue as pending.
func (ctrl *PublicSubmissionController) Create(c *fiber.Ctx) error {
	if !helperOSS.IsMultipart(c) {
		return helper.JsonError(c, fiber.StatusBadRequest, "multipart/form-data expected")
	}

	var body dto.CreateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			fieldErrors := map[string][]string{}
			for _, fe := range ve {
				fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
			}
			return helper.JsonValidationError(c, fieldErrors)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := dto.ValidateTagSets(body.MaterialTags(), body.ColorTags(), body.FunctionTags()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if gl := strings.TrimSpace(body.GradeLevel); gl != "" && !constants.IsKnownGradeLevel(gl) {
		log.Printf("[INTAKE] unknown grade level kept as-is: %q", gl)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	images := form.File["images"]
	if len(images) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "At least one image is required")
	}
	if len(images) > maxIntakeImages {
		return helper.JsonError(c, fiber.StatusBadRequest, "Too many images (max 6)")
	}

	sub := body.ToModel()

	imageURLs := make([]string, 0, len(images))
	for _, fh := range images {
		url, err := ctrl.Blob.UploadImage(c.UserContext(), "images", fh)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		imageURLs = append(imageURLs, url)
	}
	sub.SubmissionImageURLs = imageURLs

	if pdfs := form.File["pdf"]; len(pdfs) > 0 {
		url, err := ctrl.Blob.UploadPDF(c.UserContext(), "pdfs", pdfs[0])
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		sub.SubmissionPDFURL = &url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Submission received — pending review", dto.FromModel(&sub))
}
