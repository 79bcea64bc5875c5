package exporter

import (
	"bytes"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/exceptions"

	"github.com/xuri/excelize/v2"
)

const maxSheetNameLength = 31

// XLSX writes the projection to a single styled worksheet.
func XLSX[T any](fileName, sheetName string, rows []T, columns []Column[T]) (*Document, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "Export"
	}
	if len(sheetName) > maxSheetNameLength {
		sheetName = sheetName[:maxSheetNameLength]
	}

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatXLSX)
	}
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatXLSX)
	}

	if err := writeRow(f, sheetName, 1, headerOf(columns)); err != nil {
		return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatXLSX)
	}
	if len(columns) > 0 {
		lastHeader, err := excelize.CoordinatesToCellName(len(columns), 1)
		if err != nil {
			return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatXLSX)
		}
		if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
			return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatXLSX)
		}
	}

	for i, row := range rows {
		if err := writeRow(f, sheetName, i+2, recordOf(row, columns)); err != nil {
			return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatXLSX)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatXLSX)
	}

	return &Document{
		FileName:    fileName,
		ContentType: constvars.MIMEApplicationXLSX,
		Body:        buf.Bytes(),
	}, nil
}

func writeRow(f *excelize.File, sheetName string, rowNumber int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNumber)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
