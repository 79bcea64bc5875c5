package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStorage struct {
	uploaded    map[string][]byte
	uploadErr   error
	presignErr  error
	contentType string
}

func (f *fakeStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, body []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded[bucketName+"/"+objectName] = body
	f.contentType = contentType
	return objectName, nil
}

func (f *fakeStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://minio.local/" + bucketName + "/" + objectName, nil
}

func TestExportArchiveStorageArchive(t *testing.T) {
	t.Run("Uploads And Presigns", func(t *testing.T) {
		backing := &fakeStorage{}
		archive := NewExportArchiveStorage(backing, "exports", time.Hour, zap.NewNop())

		result, err := archive.Archive(context.Background(), "patient_42_bills.csv", "text/csv", []byte("a,b\n"))
		require.NoError(t, err)
		assert.Equal(t, "patient_42_bills.csv", result.ObjectName)
		assert.Equal(t, "https://minio.local/exports/patient_42_bills.csv", result.URL)
		assert.Equal(t, []byte("a,b\n"), backing.uploaded["exports/patient_42_bills.csv"])
		assert.Equal(t, "text/csv", backing.contentType)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		archive := NewExportArchiveStorage(&fakeStorage{uploadErr: errors.New("down")}, "exports", time.Hour, zap.NewNop())
		_, err := archive.Archive(context.Background(), "x.csv", "text/csv", nil)
		assert.Error(t, err)
	})

	t.Run("Presign Failure", func(t *testing.T) {
		archive := NewExportArchiveStorage(&fakeStorage{presignErr: errors.New("denied")}, "exports", time.Hour, zap.NewNop())
		_, err := archive.Archive(context.Background(), "x.csv", "text/csv", nil)
		assert.Error(t, err)
	})
}
