package profiles

import (
	"clinic-dashboard/internal/app/services/shared/events"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func clinicFixture() (*fakePatientClient, *fakeDoctorClient, *fakeInvoiceClient) {
	patients := &fakePatientClient{patients: []clinic_dto.Patient{{ID: 42, FirstName: "Bo"}}}
	doctors := &fakeDoctorClient{doctors: []clinic_dto.Doctor{{ID: 7, Name: "A"}}}
	invoices := &fakeInvoiceClient{invoices: []clinic_dto.Invoice{
		{ID: 1, PatientID: 42, DoctorID: int64Ptr(7), Amount: 12.5, Description: "Visit, follow-up"},
	}}
	return patients, doctors, invoices
}

func TestProfileControllerEvents(t *testing.T) {
	ctx := context.Background()
	patients, doctors, invoices := clinicFixture()
	bus := events.NewBus(zap.NewNop())
	renderer := &recordingRenderer{}
	controller := NewProfileController(
		newTestAggregator(patients, doctors, invoices, &fakeStudentClient{}),
		renderer, bus, nil, nil, zap.NewNop(),
	)

	controller.Activate(ctx, 42)
	require.Equal(t, 1, renderer.count("bills"))
	assert.False(t, renderer.isLoading())

	t.Run("Matching Hint Reloads Once", func(t *testing.T) {
		before := renderer.count("bills")
		bus.Publish(ctx, events.InvoicesChanged(int64Ptr(42)))
		assert.Equal(t, before+1, renderer.count("bills"))
	})

	t.Run("Other Patient Hint Is Ignored", func(t *testing.T) {
		before := renderer.count("bills")
		bus.Publish(ctx, events.InvoicesChanged(int64Ptr(7)))
		assert.Equal(t, before, renderer.count("bills"))
	})

	t.Run("No Hint Reloads", func(t *testing.T) {
		before := renderer.count("bills")
		bus.Publish(ctx, events.InvoicesChanged(nil))
		assert.Equal(t, before+1, renderer.count("bills"))
	})

	t.Run("Patients Changed Always Reloads", func(t *testing.T) {
		before := renderer.count("bills")
		bus.Publish(ctx, events.PatientsChanged(int64Ptr(3)))
		assert.Equal(t, before+1, renderer.count("bills"))
	})

	t.Run("Repeated Activation Keeps One Listener", func(t *testing.T) {
		controller.Activate(ctx, 42)
		controller.Activate(ctx, 42)
		assert.Equal(t, 1, bus.SubscriberCount(constvars.EventInvoicesChanged))
		assert.Equal(t, 1, bus.SubscriberCount(constvars.EventPatientsChanged))

		before := renderer.count("bills")
		bus.Publish(ctx, events.InvoicesChanged(int64Ptr(42)))
		assert.Equal(t, before+1, renderer.count("bills"))
	})

	t.Run("Deactivate Drops Listeners", func(t *testing.T) {
		controller.Deactivate()
		assert.Equal(t, 0, bus.SubscriberCount(constvars.EventInvoicesChanged))
		assert.Nil(t, controller.Current())
	})
}

func TestProfileControllerStudentFallback(t *testing.T) {
	ctx := context.Background()
	students := &fakeStudentClient{
		students: map[int64]clinic_dto.Student{42: {ID: 42, Name: strPtr("Sam")}},
	}
	renderer := &recordingRenderer{}
	controller := NewProfileController(
		newTestAggregator(&fakePatientClient{findErr: errors.New("boom")}, &fakeDoctorClient{}, &fakeInvoiceClient{}, students),
		renderer, events.NewBus(zap.NewNop()), nil, nil, zap.NewNop(),
	)

	controller.Activate(ctx, 42)

	assert.Equal(t, 1, renderer.count("student"))
	assert.Equal(t, 0, renderer.count("error"))
	assert.False(t, renderer.isLoading())

	document, err := controller.Export(ctx, 42, constvars.ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "student_42_enrollments.csv", document.FileName)
}

func TestProfileControllerErrorState(t *testing.T) {
	ctx := context.Background()
	renderer := &recordingRenderer{}
	controller := NewProfileController(
		newTestAggregator(&fakePatientClient{}, &fakeDoctorClient{}, &fakeInvoiceClient{}, &fakeStudentClient{}),
		renderer, events.NewBus(zap.NewNop()), nil, nil, zap.NewNop(),
	)

	controller.Activate(ctx, 5)

	assert.Equal(t, 1, renderer.count("error"))
	assert.False(t, renderer.isLoading())
	assert.Nil(t, controller.Current())

	_, err := controller.Export(ctx, 42, constvars.ExportFormatCSV)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}

// gatedLoader blocks the first load until released so a second load can
// overtake it.
type gatedLoader struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
}

func (l *gatedLoader) Load(ctx context.Context, subjectID int64) (*responses.Profile, error) {
	l.mu.Lock()
	l.calls++
	call := l.calls
	l.mu.Unlock()

	if call == 1 {
		<-l.release
	}
	return &responses.Profile{
		Kind:      responses.ProfileKindPatient,
		SubjectID: subjectID,
		Patient:   &clinic_dto.Patient{ID: subjectID},
		Bills:     []clinic_dto.Invoice{{ID: int64(call)}},
	}, nil
}

func TestProfileControllerDiscardsSupersededLoad(t *testing.T) {
	ctx := context.Background()
	loader := &gatedLoader{release: make(chan struct{})}
	renderer := &recordingRenderer{}
	controller := NewProfileController(loader, renderer, events.NewBus(zap.NewNop()), nil, nil, zap.NewNop())

	done := make(chan struct{})
	go func() {
		controller.Activate(ctx, 42)
		close(done)
	}()

	require.Eventually(t, func() bool {
		loader.mu.Lock()
		defer loader.mu.Unlock()
		return loader.calls == 1
	}, time.Second, 5*time.Millisecond)

	controller.Reload(ctx)
	close(loader.release)
	<-done

	current := controller.Current()
	require.NotNil(t, current)
	assert.Equal(t, []int64{2}, billIDs(current.Bills), "the newer load wins")
	assert.Equal(t, 1, renderer.count("bills"))
	assert.False(t, renderer.isLoading())
}

func TestProfileControllerExport(t *testing.T) {
	ctx := context.Background()
	patients, doctors, invoices := clinicFixture()
	controller := NewProfileController(
		newTestAggregator(patients, doctors, invoices, &fakeStudentClient{}),
		&recordingRenderer{}, events.NewBus(zap.NewNop()), nil, nil, zap.NewNop(),
	)
	controller.Activate(ctx, 42)

	t.Run("CSV", func(t *testing.T) {
		document, err := controller.Export(ctx, 42, constvars.ExportFormatCSV)
		require.NoError(t, err)
		assert.Equal(t, "patient_42_bills.csv", document.FileName)
		lines := strings.Split(strings.TrimSpace(string(document.Body)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Invoice ID,Doctor,Amount,Issued On,Description", strings.TrimSpace(lines[0]))
		assert.Equal(t, `1,A,12.5,,"Visit, follow-up"`, strings.TrimSpace(lines[1]))
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		_, err := controller.Export(ctx, 42, "docx")
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Archive Disabled", func(t *testing.T) {
		_, err := controller.ArchiveExport(ctx, 42, constvars.ExportFormatCSV)
		assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})
}

type fakeArchive struct {
	objectName string
}

func (a *fakeArchive) Archive(ctx context.Context, objectName, contentType string, body []byte) (*responses.ArchivedExport, error) {
	a.objectName = objectName
	return &responses.ArchivedExport{ObjectName: objectName, URL: "http://minio/" + objectName}, nil
}

type denyLimiter struct{}

func (denyLimiter) Allow(ctx context.Context, resourceName string) (bool, int, error) {
	return false, 30, nil
}

func TestProfileControllerArchiveExport(t *testing.T) {
	ctx := context.Background()
	patients, doctors, invoices := clinicFixture()
	archive := &fakeArchive{}
	controller := NewProfileController(
		newTestAggregator(patients, doctors, invoices, &fakeStudentClient{}),
		&recordingRenderer{}, events.NewBus(zap.NewNop()), archive, nil, zap.NewNop(),
	)
	controller.Activate(ctx, 42)

	archived, err := controller.ArchiveExport(ctx, 42, constvars.ExportFormatXLSX)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(archive.objectName, "/patient_42_bills.xlsx"))
	assert.Equal(t, archive.objectName, archived.ObjectName)

	t.Run("Rate Limited", func(t *testing.T) {
		limited := NewProfileController(
			newTestAggregator(patients, doctors, invoices, &fakeStudentClient{}),
			&recordingRenderer{}, events.NewBus(zap.NewNop()), archive, denyLimiter{}, zap.NewNop(),
		)
		limited.Activate(ctx, 42)

		_, err := limited.ArchiveExport(ctx, 42, constvars.ExportFormatCSV)
		assert.Equal(t, constvars.StatusTooManyRequests, exceptions.StatusCodeOf(err))
	})
}

// subjectGatedLoader holds every load of one subject until released.
type subjectGatedLoader struct {
	gated   int64
	started chan int64
	release chan struct{}
}

func (l *subjectGatedLoader) Load(ctx context.Context, subjectID int64) (*responses.Profile, error) {
	if subjectID == l.gated {
		l.started <- subjectID
		<-l.release
	}
	return &responses.Profile{
		Kind:      responses.ProfileKindPatient,
		SubjectID: subjectID,
		Patient:   &clinic_dto.Patient{ID: subjectID},
		Bills:     []clinic_dto.Invoice{{ID: subjectID * 100, PatientID: subjectID}},
	}, nil
}

func TestProfileControllerOverlappingActivations(t *testing.T) {
	ctx := context.Background()
	loader := &subjectGatedLoader{gated: 1, started: make(chan int64, 1), release: make(chan struct{})}
	archive := &fakeArchive{}
	controller := NewProfileController(loader, &recordingRenderer{}, events.NewBus(zap.NewNop()), archive, nil, zap.NewNop())

	done := make(chan struct{})
	go func() {
		controller.Activate(ctx, 1)
		close(done)
	}()
	<-loader.started
	controller.Activate(ctx, 2)
	close(loader.release)
	<-done

	require.NotNil(t, controller.Current())
	require.Equal(t, int64(2), controller.Current().SubjectID)

	t.Run("Export Refuses Replaced Subject", func(t *testing.T) {
		document, err := controller.Export(ctx, 1, constvars.ExportFormatCSV)
		assert.Nil(t, document)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("Archive Refuses Replaced Subject", func(t *testing.T) {
		_, err := controller.ArchiveExport(ctx, 1, constvars.ExportFormatCSV)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		assert.Empty(t, archive.objectName)
	})

	t.Run("View Refuses Replaced Subject", func(t *testing.T) {
		called := false
		err := controller.WithSubject(1, func(profile *responses.Profile) { called = true })
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		assert.False(t, called)
	})

	t.Run("Winning Subject Still Exports", func(t *testing.T) {
		document, err := controller.Export(ctx, 2, constvars.ExportFormatCSV)
		require.NoError(t, err)
		assert.Equal(t, "patient_2_bills.csv", document.FileName)

		var viewed int64
		require.NoError(t, controller.WithSubject(2, func(profile *responses.Profile) { viewed = profile.SubjectID }))
		assert.Equal(t, int64(2), viewed)
	})
}
