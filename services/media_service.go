package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"sync/atomic"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MaxFileSize is the ceiling for a single KYC attachment.
const MaxFileSize = 20 * 1024 * 1024 // 20 MB

// ObjectStore is the slice of the object-storage client the uploader needs.
// *minio.Client satisfies it.
type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MediaService uploads KYC attachments to the media host. Upload never fails
// the caller: an absent, oversize or failed attachment degrades to an empty
// URL so a flaky media host cannot block intake.
type MediaService struct {
	store     ObjectStore
	bucket    string
	publicURL string
	log       *zap.Logger

	failures atomic.Int64
}

func NewMediaService(store ObjectStore, bucket, publicURL string, log *zap.Logger) *MediaService {
	return &MediaService{
		store:     store,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log,
	}
}

// Upload stores one attachment and returns its public URL, or "" when the file
// is absent, empty, oversize, or the store call fails. Callers treat "" as
// "no media attached".
func (ms *MediaService) Upload(ctx context.Context, file *multipart.FileHeader, prefix string) string {
	if file == nil || file.Size == 0 {
		return ""
	}

	if file.Size > MaxFileSize {
		ms.failures.Add(1)
		ms.log.Warn("attachment exceeds size limit, skipping upload",
			zap.String("file", file.Filename),
			zap.Int64("size", file.Size),
			zap.String("prefix", prefix),
		)
		return ""
	}

	src, err := file.Open()
	if err != nil {
		ms.failures.Add(1)
		ms.log.Warn("could not open attachment",
			zap.String("file", file.Filename),
			zap.Error(err),
		)
		return ""
	}
	defer src.Close()

	objectName := ObjectName(prefix, file.Filename)

	_, err = ms.store.PutObject(ctx, ms.bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		ms.failures.Add(1)
		ms.log.Warn("attachment upload failed",
			zap.String("file", file.Filename),
			zap.String("object", objectName),
			zap.Error(err),
		)
		return ""
	}

	return fmt.Sprintf("%s/%s/%s", ms.publicURL, ms.bucket, objectName)
}

// FailureCount reports how many uploads have degraded since process start, so
// operators can reconcile missing documents.
func (ms *MediaService) FailureCount() int64 {
	return ms.failures.Load()
}

// ObjectName derives a unique destination name from the prefix, the current
// timestamp and the original file extension (jpg when absent).
func ObjectName(prefix, filename string) string {
	extension := "jpg"
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		extension = filename[idx+1:]
	}

	return fmt.Sprintf("%s-%d.%s", prefix, time.Now().UnixMilli(), extension)
}
