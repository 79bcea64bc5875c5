package exporter

import (
	"bytes"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/exceptions"
	"html/template"
)

var printableTemplate = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; }
h1 { font-size: 18px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; font-size: 12px; }
th { background: #f3f4f6; }
</style>
</head>
<body onload="window.print()">
<h1>{{.Title}}</h1>
<table>
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Records}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type printablePage struct {
	Title   string
	Header  []string
	Records [][]string
}

// PrintableHTML builds a titled table page that opens the print dialog on load.
func PrintableHTML[T any](fileName, title string, rows []T, columns []Column[T]) (*Document, error) {
	page := printablePage{
		Title:   title,
		Header:  headerOf(columns),
		Records: make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		page.Records = append(page.Records, recordOf(row, columns))
	}

	var buf bytes.Buffer
	if err := printableTemplate.Execute(&buf, page); err != nil {
		return nil, exceptions.ErrBuildExport(err, constvars.ExportFormatPDF)
	}

	return &Document{
		FileName:    fileName,
		ContentType: constvars.MIMETextHTMLCharsetUTF8,
		Body:        buf.Bytes(),
		Inline:      true,
	}, nil
}
