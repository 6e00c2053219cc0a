// file: internals/helpers/oss/oss_file_service.go
package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService is the uniform upload/delete facade consumed by controllers and
the submission store. Delete-many is best effort: each failure is reported
per URL and never aborts the batch.
*/
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	UploadPDF(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
	DeleteManyByPublicURL(ctx context.Context, publicURLs []string) (deleted []string, failed map[string]error)
}

// --------------------------------------------------
// Aliyun OSS implementation
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv builds the service from ENV. prefix is optional
// (e.g. "submissions/").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	url, err := b.svc.UploadAsWebP(ctx, fh, dir) // re-encode → WebP
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return "", fe
		}
		return "", fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Image upload failed: %v", err))
	}
	return url, nil
}

func (b *OSSBlobService) UploadPDF(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	if !strings.EqualFold(strings.TrimSpace(fh.Header.Get(fiber.HeaderContentType)), "application/pdf") &&
		!strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Only PDF is accepted")
	}
	key, _, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return "", fe
		}
		return "", fiber.NewError(fiber.StatusBadGateway, "PDF upload failed")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Empty URL")
	}
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := b.svc.DeleteObject(ctx, key); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Object delete failed: %v", err))
	}
	return nil
}

func (b *OSSBlobService) DeleteManyByPublicURL(ctx context.Context, publicURLs []string) ([]string, map[string]error) {
	deleted := make([]string, 0, len(publicURLs))
	failed := map[string]error{}
	for _, u := range publicURLs {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if err := b.DeleteByPublicURL(ctx, u); err != nil {
			failed[u] = err
			continue
		}
		deleted = append(deleted, u)
	}
	return deleted, failed
}

// --------------------------------------------------
// Small controller helpers
// --------------------------------------------------

// IsMultipart reports whether the request is multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}
