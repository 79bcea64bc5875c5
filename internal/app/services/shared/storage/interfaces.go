package storage

import (
	"clinic-dashboard/internal/pkg/dto/responses"
	"context"
)

// ExportArchive keeps generated exports in object storage.
type ExportArchive interface {
	Archive(ctx context.Context, objectName, contentType string, body []byte) (*responses.ArchivedExport, error)
}
