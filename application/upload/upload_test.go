package upload_test

import (
	"context"
	"strings"
	"testing"

	appupload "github.com/cwagoventures/cosmibeautii-backend/application/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadApp_Store(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "png accepted",
			contentType: "image/png",
			size:        1024,
		},
		{
			name:        "jpeg at the limit accepted",
			contentType: "image/jpeg",
			size:        appupload.MaxFileSize,
		},
		{
			name:        "pdf rejected",
			contentType: "application/pdf",
			size:        1024,
			wantErr:     true,
			errMsg:      "File must be an image",
		},
		{
			name:        "oversized image rejected",
			contentType: "image/png",
			size:        appupload.MaxFileSize + 1,
			wantErr:     true,
			errMsg:      "File size must be less than 10MB",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appupload.NewUploadApp()

			res, err := app.Store(context.Background(), tt.contentType, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(res.URL, "/uploads/payment-proof-"))
			assert.True(t, strings.HasSuffix(res.Filename, "."+strings.TrimPrefix(tt.contentType, "image/")))
		})
	}
}
