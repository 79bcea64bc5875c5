package invoices

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/shared/events"
	"clinic-dashboard/internal/app/services/shared/forms"
	"clinic-dashboard/internal/app/services/shared/uistate"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/requests"
	"clinic-dashboard/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInvoiceClient struct {
	invoices []clinic_dto.Invoice
	listErr  error
	created  []*clinic_dto.InvoiceRequest
}

func (f *fakeInvoiceClient) ListInvoices(ctx context.Context) ([]clinic_dto.Invoice, error) {
	return f.invoices, f.listErr
}

func (f *fakeInvoiceClient) FindInvoiceByID(ctx context.Context, invoiceID int64) (*clinic_dto.Invoice, error) {
	for _, invoice := range f.invoices {
		if invoice.ID == invoiceID {
			found := invoice
			return &found, nil
		}
	}
	return nil, exceptions.ErrNotFound("invoices")
}

func (f *fakeInvoiceClient) CreateInvoice(ctx context.Context, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error) {
	f.created = append(f.created, request)
	return &clinic_dto.Invoice{ID: 50, PatientID: request.PatientID}, nil
}

func (f *fakeInvoiceClient) UpdateInvoice(ctx context.Context, invoiceID int64, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error) {
	return &clinic_dto.Invoice{ID: invoiceID, PatientID: request.PatientID}, nil
}

func (f *fakeInvoiceClient) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	return nil
}

type fakePatientClient struct {
	patients []clinic_dto.Patient
}

func (f *fakePatientClient) ListPatients(ctx context.Context) ([]clinic_dto.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientClient) FindPatientByID(ctx context.Context, patientID int64) (*clinic_dto.Patient, error) {
	return nil, exceptions.ErrNotFound("patients")
}

func (f *fakePatientClient) CreatePatient(ctx context.Context, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error) {
	return nil, errors.New("unused")
}

func (f *fakePatientClient) UpdatePatient(ctx context.Context, patientID int64, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error) {
	return nil, errors.New("unused")
}

func (f *fakePatientClient) DeletePatient(ctx context.Context, patientID int64) error {
	return errors.New("unused")
}

type fakeDoctorClient struct {
	doctors []clinic_dto.Doctor
	listErr error
}

func (f *fakeDoctorClient) ListDoctors(ctx context.Context) ([]clinic_dto.Doctor, error) {
	return f.doctors, f.listErr
}

func (f *fakeDoctorClient) FindDoctorByID(ctx context.Context, doctorID int64) (*clinic_dto.Doctor, error) {
	return nil, exceptions.ErrNotFound("doctors")
}

func (f *fakeDoctorClient) CreateDoctor(ctx context.Context, request *clinic_dto.DoctorRequest) (*clinic_dto.Doctor, error) {
	return nil, errors.New("unused")
}

func (f *fakeDoctorClient) UpdateDoctor(ctx context.Context, doctorID int64, request *clinic_dto.DoctorRequest) (*clinic_dto.Doctor, error) {
	return nil, errors.New("unused")
}

func (f *fakeDoctorClient) DeleteDoctor(ctx context.Context, doctorID int64) error {
	return errors.New("unused")
}

func newInvoiceUsecase(invoices *fakeInvoiceClient, doctors *fakeDoctorClient, published *[]contracts.Event) (contracts.InvoiceUsecase, *forms.Editor) {
	bus := events.NewBus(zap.NewNop())
	bus.Subscribe(constvars.EventInvoicesChanged, func(ctx context.Context, event contracts.Event) {
		*published = append(*published, event)
	})
	patients := &fakePatientClient{patients: []clinic_dto.Patient{{ID: 1, FirstName: "Ann", LastName: "Lee"}}}
	editor := forms.NewEditor(uistate.NewMemoryStore(), constvars.ScreenInvoices)
	return NewInvoiceUsecase(invoices, patients, doctors, bus, editor, zap.NewNop()), editor
}

func TestInvoiceUsecaseLoad(t *testing.T) {
	ctx := context.Background()
	joined := "Dr Joined"
	invoices := &fakeInvoiceClient{invoices: []clinic_dto.Invoice{
		{ID: 1, PatientID: 1, DoctorID: func() *int64 { v := int64(7); return &v }()},
		{ID: 2, PatientID: 9, DoctorName: &joined},
	}}
	var published []contracts.Event

	t.Run("Decorates Names", func(t *testing.T) {
		usecase, _ := newInvoiceUsecase(invoices, &fakeDoctorClient{doctors: []clinic_dto.Doctor{{ID: 7, Name: "A"}}}, &published)

		loaded, err := usecase.Load(ctx)

		require.NoError(t, err)
		require.Len(t, loaded, 2)
		require.NotNil(t, loaded[0].PatientName)
		assert.Equal(t, "Ann Lee", *loaded[0].PatientName)
		require.NotNil(t, loaded[0].DoctorName)
		assert.Equal(t, "A", *loaded[0].DoctorName)
		assert.Nil(t, loaded[1].PatientName, "unknown patient stays blank")
		assert.Equal(t, joined, *loaded[1].DoctorName, "backend join wins")
	})

	t.Run("Doctor List Failure Still Lists Invoices", func(t *testing.T) {
		usecase, _ := newInvoiceUsecase(invoices, &fakeDoctorClient{listErr: errors.New("down")}, &published)

		loaded, err := usecase.Load(ctx)

		require.NoError(t, err)
		assert.Len(t, loaded, 2)
	})
}

func TestInvoiceUsecaseEvents(t *testing.T) {
	ctx := context.Background()
	var published []contracts.Event
	usecase, editor := newInvoiceUsecase(&fakeInvoiceClient{}, &fakeDoctorClient{}, &published)

	result, err := usecase.Submit(ctx, &requests.InvoiceForm{PatientID: 42, Amount: 10})
	require.NoError(t, err)
	assert.True(t, result.OK)
	require.Len(t, published, 1)
	require.NotNil(t, published[0].PatientID)
	assert.Equal(t, int64(42), *published[0].PatientID)

	flash, err := editor.TakeFlash(ctx)
	require.NoError(t, err)
	assert.Equal(t, constvars.AlertInvoiceCreated, flash.Message)

	result, err = usecase.Delete(ctx, 50)
	require.NoError(t, err)
	assert.True(t, result.OK)
	require.Len(t, published, 2)
	assert.Nil(t, published[1].PatientID, "delete carries no hint")

	t.Run("Invalid Amount", func(t *testing.T) {
		result, err := usecase.Submit(ctx, &requests.InvoiceForm{PatientID: 42})
		require.NoError(t, err)
		assert.False(t, result.OK)
		assert.Len(t, published, 2)
	})
}
