package exporter

import (
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/exceptions"
)

// Column projects one field of T into an export cell.
type Column[T any] struct {
	Key   string
	Label string
	Value func(row T) string
}

// Spec fixes the file naming and the column projection of one export.
type Spec[T any] struct {
	BaseName string
	Title    string
	Columns  []Column[T]
}

type Document struct {
	FileName    string
	ContentType string
	Body        []byte
	Inline      bool
}

// Build renders rows in the requested format: csv, pdf (printable HTML) or xlsx.
func Build[T any](format string, spec Spec[T], rows []T) (*Document, error) {
	switch format {
	case constvars.ExportFormatCSV:
		return CSV(spec.BaseName+".csv", rows, spec.Columns)
	case constvars.ExportFormatPDF:
		return PrintableHTML(spec.BaseName+".html", spec.Title, rows, spec.Columns)
	case constvars.ExportFormatXLSX:
		return XLSX(spec.BaseName+".xlsx", spec.Title, rows, spec.Columns)
	default:
		return nil, exceptions.ErrUnsupportedExportFormat(format)
	}
}

func headerOf[T any](columns []Column[T]) []string {
	header := make([]string, 0, len(columns))
	for _, column := range columns {
		header = append(header, column.Label)
	}
	return header
}

func recordOf[T any](row T, columns []Column[T]) []string {
	record := make([]string, 0, len(columns))
	for _, column := range columns {
		if column.Value == nil {
			record = append(record, "")
			continue
		}
		record = append(record, column.Value(row))
	}
	return record
}
