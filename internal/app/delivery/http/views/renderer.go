package views

import (
	"bytes"
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"embed"
	"html/template"
	"net/http"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

// ScreenData is what every screen template receives.
type ScreenData struct {
	Title     string
	Screen    string
	Flash     *contracts.Flash
	Page      Snapshot
	EditingID *int64
	Form      interface{}
	Options   *contracts.InvoiceOptions
	Profile   *responses.Profile
	SubjectID int64
}

// Renderer holds one parsed template set per screen, each sharing the layout.
type Renderer struct {
	screens map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"str": func(value *string) string {
		if value == nil {
			return ""
		}
		return *value
	},
	"num": func(value *int) string {
		if value == nil {
			return ""
		}
		return strconv.Itoa(*value)
	},
	"selected": func(id int64, chosen *int64) bool {
		return chosen != nil && *chosen == id
	},
}

func NewRenderer() (*Renderer, error) {
	screens := []string{
		constvars.ScreenPatients,
		constvars.ScreenDoctors,
		constvars.ScreenInvoices,
		constvars.ScreenProfiles,
		constvars.ScreenProfile,
	}

	renderer := &Renderer{screens: make(map[string]*template.Template, len(screens))}
	for _, screen := range screens {
		tmpl, err := template.New("layout").Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+screen+".html",
		)
		if err != nil {
			return nil, exceptions.ErrRenderTemplate(err, screen)
		}
		renderer.screens[screen] = tmpl
	}
	return renderer, nil
}

// Render executes into a buffer first so a template error never leaves a
// half-written page.
func (r *Renderer) Render(w http.ResponseWriter, data ScreenData) error {
	tmpl, ok := r.screens[data.Screen]
	if !ok {
		return exceptions.ErrRenderTemplate(nil, data.Screen)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return exceptions.ErrRenderTemplate(err, data.Screen)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}
