package storage

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"context"
	"time"

	"go.uber.org/zap"
)

type ExportArchiveStorage struct {
	Storage    contracts.Storage
	BucketName string
	Expiry     time.Duration
	Log        *zap.Logger
}

func NewExportArchiveStorage(storage contracts.Storage, bucketName string, expiry time.Duration, log *zap.Logger) *ExportArchiveStorage {
	return &ExportArchiveStorage{
		Storage:    storage,
		BucketName: bucketName,
		Expiry:     expiry,
		Log:        log,
	}
}

// Archive uploads an export and returns a presigned download link for it.
func (s *ExportArchiveStorage) Archive(ctx context.Context, objectName, contentType string, body []byte) (*responses.ArchivedExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("ExportArchiveStorage.Archive called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExportObjectKey, objectName),
	)

	storedName, err := s.Storage.UploadObject(ctx, s.BucketName, objectName, contentType, body)
	if err != nil {
		s.Log.Error("ExportArchiveStorage.Archive error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	url, err := s.Storage.GetObjectUrlWithExpiryTime(ctx, s.BucketName, storedName, s.Expiry)
	if err != nil {
		s.Log.Error("ExportArchiveStorage.Archive error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("ExportArchiveStorage.Archive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExportObjectKey, storedName),
	)
	return &responses.ArchivedExport{
		ObjectName: storedName,
		URL:        url,
		ExpiresAt:  time.Now().Add(s.Expiry),
	}, nil
}
