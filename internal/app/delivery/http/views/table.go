package views

// RowFunc projects one record into a table row. RenderTable fills in Index.
type RowFunc[T any] func(record T) Row

// RenderTable replaces the rows of regionID. An empty input shows the
// emptyRegionID placeholder and renders nothing else.
func RenderTable[T any](page *Page, regionID string, records []T, rowFunc RowFunc[T], emptyRegionID string) {
	page.mutate(func() {
		body := page.region(regionID)
		body.Rows = nil

		placeholder := page.region(emptyRegionID)
		if len(records) == 0 {
			placeholder.Hidden = false
			return
		}
		placeholder.Hidden = true

		body.Rows = make([]Row, 0, len(records))
		for i, record := range records {
			row := rowFunc(record)
			row.Index = i + 1
			body.Rows = append(body.Rows, row)
		}
	})
}
