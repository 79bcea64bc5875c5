package views

import "sync"

// Row is one rendered table line. Index is the 1-based display position,
// distinct from the record ID.
type Row struct {
	ID    string
	Index int
	Cells []string
	Href  string
}

// Region is a named area of a page: a text slot, a visibility flag and,
// for table bodies, its rows.
type Region struct {
	Text   string
	Hidden bool
	Rows   []Row
}

// Page is the server-side state of one screen. Every mutation bumps the
// version so clients can tell when to refresh.
type Page struct {
	mu      sync.RWMutex
	version uint64
	regions map[string]*Region
}

func NewPage() *Page {
	return &Page{regions: make(map[string]*Region)}
}

func (p *Page) region(id string) *Region {
	r, ok := p.regions[id]
	if !ok {
		r = &Region{}
		p.regions[id] = r
	}
	return r
}

func (p *Page) mutate(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
	p.version++
}

func (p *Page) SetText(id, text string) {
	p.mutate(func() {
		p.region(id).Text = text
	})
}

// Show toggles a region's visibility.
func (p *Page) Show(id string, visible bool) {
	p.mutate(func() {
		p.region(id).Hidden = !visible
	})
}

// RemoveRow drops the row with rowID and leaves the other rows' display
// indices as they were.
func (p *Page) RemoveRow(regionID, rowID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.regions[regionID]
	if !ok {
		return false
	}
	for i, row := range r.Rows {
		if row.ID == rowID {
			r.Rows = append(r.Rows[:i:i], r.Rows[i+1:]...)
			p.version++
			return true
		}
	}
	return false
}

func (p *Page) Version() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.version
}

// Snapshot copies the page for rendering.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	regions := make(map[string]Region, len(p.regions))
	for id, r := range p.regions {
		regions[id] = Region{
			Text:   r.Text,
			Hidden: r.Hidden,
			Rows:   append([]Row(nil), r.Rows...),
		}
	}
	return Snapshot{Version: p.version, regions: regions}
}

type Snapshot struct {
	Version uint64
	regions map[string]Region
}

func (s Snapshot) Text(id string) string {
	return s.regions[id].Text
}

func (s Snapshot) Hidden(id string) bool {
	return s.regions[id].Hidden
}

func (s Snapshot) Rows(id string) []Row {
	return s.regions[id].Rows
}
