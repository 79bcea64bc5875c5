package exporter

import (
	"bytes"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/exceptions"
	"encoding/csv"
)

// CSV writes a header row of column labels followed by one line per row.
// Fields holding separators, quotes or line breaks are quoted per RFC 4180.
func CSV[T any](fileName string, rows []T, columns []Column[T]) (*Document, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headerOf(columns)); err != nil {
		return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatCSV)
	}
	for _, row := range rows {
		if err := writer.Write(recordOf(row, columns)); err != nil {
			return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatCSV)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatCSV)
	}

	return &Document{
		FileName:    fileName,
		ContentType: constvars.MIMETextCSVCharsetUTF8,
		Body:        buf.Bytes(),
	}, nil
}
