package services

import (
	"context"
	"io"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/pkg/rest"
)

// Upload types the backend accepts for /upload.
const (
	UploadTypeProducts = "products"
	UploadTypeAvatars  = "avatars"
)

// UploadService calls the generic /upload endpoint used for product and
// avatar images.
type UploadService struct {
	client *rest.Client
}

func NewUploadService(client *rest.Client) *UploadService {
	return &UploadService{client: client}
}

// UploadFile stores one file and returns where it landed. Forms submit the
// returned FilePath in their create/update payloads.
func (s *UploadService) UploadFile(ctx context.Context, filename string, r io.Reader, uploadType string) (*models.UploadResult, error) {
	var result models.UploadResult
	err := s.client.Post("/upload").
		Field("upload_type", uploadType).
		File("file", filename, r).
		Result(ctx, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
