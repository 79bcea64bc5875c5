package controllers

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/delivery/http/views"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/requests"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"clinic-dashboard/internal/pkg/exporter"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientUsecase struct {
	patients  []clinic_dto.Patient
	editingID *int64
	flash     *contracts.Flash
	submitted *requests.PatientForm
	edited    []int64
	deleted   []int64
	cancelled int
}

func (f *fakePatientUsecase) Load(ctx context.Context) ([]clinic_dto.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientUsecase) Submit(ctx context.Context, form *requests.PatientForm) (*contracts.MutationResult, error) {
	f.submitted = form
	return &contracts.MutationResult{OK: true}, nil
}

func (f *fakePatientUsecase) Edit(ctx context.Context, patientID int64) (*requests.PatientForm, error) {
	f.edited = append(f.edited, patientID)
	for _, patient := range f.patients {
		if patient.ID == patientID {
			return requests.PatientFormFrom(&patient), nil
		}
	}
	return nil, exceptions.ErrNotFound("patients")
}

func (f *fakePatientUsecase) Cancel(ctx context.Context) error {
	f.cancelled++
	f.editingID = nil
	return nil
}

func (f *fakePatientUsecase) Delete(ctx context.Context, patientID int64) (*contracts.MutationResult, error) {
	f.deleted = append(f.deleted, patientID)
	return &contracts.MutationResult{OK: true}, nil
}

func (f *fakePatientUsecase) EditingID(ctx context.Context) (*int64, error) {
	return f.editingID, nil
}

func (f *fakePatientUsecase) TakeFlash(ctx context.Context) (*contracts.Flash, error) {
	flash := f.flash
	f.flash = nil
	return flash, nil
}

type fakeProfile struct {
	current   *responses.Profile
	activated []int64
	formats   []string
}

func (f *fakeProfile) Activate(ctx context.Context, subjectID int64) {
	f.activated = append(f.activated, subjectID)
	f.current = &responses.Profile{Kind: responses.ProfileKindPatient, SubjectID: subjectID}
}

func (f *fakeProfile) Reload(ctx context.Context) {}

func (f *fakeProfile) Deactivate() {}

func (f *fakeProfile) Current() *responses.Profile {
	return f.current
}

func (f *fakeProfile) WithSubject(subjectID int64, view func(profile *responses.Profile)) error {
	if f.current == nil {
		return exceptions.ErrNoActiveProfile()
	}
	if f.current.SubjectID != subjectID {
		return exceptions.ErrProfileSwitched(subjectID, f.current.SubjectID)
	}
	view(f.current)
	return nil
}

func (f *fakeProfile) Export(ctx context.Context, subjectID int64, format string) (*exporter.Document, error) {
	f.formats = append(f.formats, format)
	if format != constvars.ExportFormatCSV {
		return nil, exceptions.ErrUnsupportedExportFormat(format)
	}
	return &exporter.Document{
		FileName:    "bills.csv",
		ContentType: constvars.MIMETextCSVCharsetUTF8,
		Body:        []byte("Invoice ID\n1\n"),
	}, nil
}

func (f *fakeProfile) ArchiveExport(ctx context.Context, subjectID int64, format string) (*responses.ArchivedExport, error) {
	return nil, exceptions.ErrExportArchiveDisabled()
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 5, Version: "test"}}
}

func newTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	return renderer
}

func patientRouter(ctrl *PatientController) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/patients", ctrl.Index)
	router.Post("/patients", ctrl.Submit)
	router.Post("/patients/cancel", ctrl.Cancel)
	router.Post("/patients/{id}/edit", ctrl.Edit)
	router.Post("/patients/{id}/delete", ctrl.Delete)
	return router
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(constvars.HeaderContentType, "application/x-www-form-urlencoded")
	return req
}

func TestPatientControllerIndex(t *testing.T) {
	age := 30
	usecase := &fakePatientUsecase{
		patients: []clinic_dto.Patient{{ID: 7, FirstName: "Ann", LastName: "Lee", Age: &age, Phone: "555"}},
		flash:    &contracts.Flash{Level: constvars.AlertLevelSuccess, Message: constvars.AlertPatientAdded},
	}
	ctrl := NewPatientController(zap.NewNop(), usecase, newTestRenderer(t), testConfig())
	router := patientRouter(ctrl)

	t.Run("Renders Rows And Flash", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Ann Lee")
		assert.Contains(t, body, constvars.AlertPatientAdded)
		assert.Contains(t, body, `action="/patients/7/delete"`)
	})

	t.Run("Flash Shown Once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))
		assert.NotContains(t, rec.Body.String(), constvars.AlertPatientAdded)
	})

	t.Run("Editing Prefills Form", func(t *testing.T) {
		usecase.editingID = int64Ptr(7)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))
		assert.Contains(t, rec.Body.String(), `value="Ann"`)
		assert.Contains(t, rec.Body.String(), "Edit patient")
	})

	t.Run("Vanished Editing Record Leaves Edit Mode", func(t *testing.T) {
		usecase.editingID = int64Ptr(99)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))
		assert.Equal(t, 1, usecase.cancelled)
		assert.Contains(t, rec.Body.String(), "Add patient")
	})
}

func TestPatientControllerMutations(t *testing.T) {
	usecase := &fakePatientUsecase{}
	ctrl := NewPatientController(zap.NewNop(), usecase, newTestRenderer(t), testConfig())
	router := patientRouter(ctrl)

	t.Run("Submit Parses Form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/patients", url.Values{
			"first_name": {" Ann "},
			"last_name":  {"Lee"},
			"age":        {"41"},
			"gender":     {""},
			"phone":      {"555"},
		}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/patients", rec.Header().Get(constvars.HeaderLocation))
		require.NotNil(t, usecase.submitted)
		assert.Equal(t, "Ann", usecase.submitted.FirstName)
		require.NotNil(t, usecase.submitted.Age)
		assert.Equal(t, 41, *usecase.submitted.Age)
		assert.Nil(t, usecase.submitted.Gender)
	})

	t.Run("Malformed Age Is Dropped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/patients", url.Values{"first_name": {"A"}, "last_name": {"B"}, "age": {"abc"}}))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Nil(t, usecase.submitted.Age)
	})

	t.Run("Malformed Id Is A No-op", func(t *testing.T) {
		for _, target := range []string{"/patients/abc/edit", "/patients/0/delete", "/patients/-3/delete"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, postForm(target, nil))
			assert.Equal(t, http.StatusSeeOther, rec.Code, target)
		}
		assert.Empty(t, usecase.edited)
		assert.Empty(t, usecase.deleted)
	})

	t.Run("Delete And Edit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/patients/12/delete", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, []int64{12}, usecase.deleted)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/patients/5/edit", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, []int64{5}, usecase.edited)
	})
}

func TestProfileControllerExportAndVersion(t *testing.T) {
	profile := &fakeProfile{}
	profilePage := views.NewPage()
	ctrl := NewProfileController(zap.NewNop(), nil, profile, views.NewPage(), profilePage, newTestRenderer(t), testConfig())

	router := chi.NewRouter()
	router.Get("/profiles/{id}/export/{format}", ctrl.Export)
	router.Get("/profiles/{id}/version", ctrl.Version)

	t.Run("Export Activates Missing Subject Once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/42/export/csv", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="bills.csv"`, rec.Header().Get(constvars.HeaderContentDisposition))
		assert.Equal(t, "Invoice ID\n1\n", rec.Body.String())

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/42/export/csv", nil))
		assert.Equal(t, []int64{42}, profile.activated)
	})

	t.Run("Unknown Format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/42/export/doc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Version", func(t *testing.T) {
		profilePage.SetText(constvars.RegionPatientName, "Ann Lee")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/42/version", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data responses.PageVersion `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(42), body.Data.SubjectID)
		assert.Equal(t, profilePage.Version(), body.Data.Version)
	})
}

func TestAPIController(t *testing.T) {
	profile := &fakeProfile{}
	ctrl := NewAPIController(zap.NewNop(), profile, testConfig())

	router := chi.NewRouter()
	router.Get("/api/v1/profiles/{id}", ctrl.GetProfile)
	router.Post("/api/v1/profiles/{id}/export/{format}/archive", ctrl.ArchiveExport)
	router.Get("/health", ctrl.Health)

	t.Run("Get Profile", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/42", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"subject_id":42`)
	})

	t.Run("Bad Id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/x", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Archive Disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/profiles/42/export/csv/archive", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func int64Ptr(v int64) *int64 {
	return &v
}
