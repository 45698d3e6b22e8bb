package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cwagoventures/cosmibeautii-backend/constant"
	"github.com/cwagoventures/cosmibeautii-backend/model"
	"github.com/cwagoventures/cosmibeautii-backend/utils/errors"
	"github.com/cwagoventures/cosmibeautii-backend/utils/logger"
	"go.uber.org/zap"
)

// MaxFileSize caps payment-proof uploads at 10MB.
const MaxFileSize = 10 * 1024 * 1024

type UploadApp interface {
	Store(ctx context.Context, contentType string, size int64) (*model.UploadResponse, error)
}

type uploadAppImpl struct{}

func NewUploadApp() UploadApp {
	return &uploadAppImpl{}
}

// Store validates the payment-proof image and returns its placeholder URL.
// There is no durable storage behind it; only the URL travels with the order.
func (s *uploadAppImpl) Store(ctx context.Context, contentType string, size int64) (*model.UploadResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.SetCustomError(constant.ErrNotAnImage)
	}
	if size > MaxFileSize {
		return nil, errors.SetCustomError(constant.ErrFileTooLarge)
	}

	subtype := strings.TrimPrefix(contentType, "image/")
	filename := fmt.Sprintf("payment-proof-%d.%s", time.Now().UnixMilli(), subtype)
	url := "/uploads/" + filename

	logger.Info("[Store] image uploaded",
		zap.String("filename", filename),
		zap.Int64("size", size),
		zap.String("type", contentType),
		zap.String("url", url),
	)

	return &model.UploadResponse{URL: url, Filename: filename}, nil
}
