package minio

import (
	"io"
	"sync"
	"time"

	"report-srv/config"

	"github.com/minio/minio-go/v7"
)

type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// UploadRequest is the input of UploadFile.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// PresignedURLRequest is the input of GetPresignedDownloadURL.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Method     string
	Expiry     time.Duration
	// FileName, when set, is sent back as the attachment name.
	FileName    string
	Disposition string
}

// PresignedURLResponse is a temporary link to an object.
type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Method    string    `json:"method"`
}
