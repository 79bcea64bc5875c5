package profiles

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/exceptions"
	"context"
	"sync"
)

type fakePatientClient struct {
	mu        sync.Mutex
	patients  []clinic_dto.Patient
	findErr   error
	listErr   error
	deleteErr error
	deleted   []int64
}

func (f *fakePatientClient) ListPatients(ctx context.Context) ([]clinic_dto.Patient, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.patients, nil
}

func (f *fakePatientClient) FindPatientByID(ctx context.Context, patientID int64) (*clinic_dto.Patient, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, patient := range f.patients {
		if patient.ID == patientID {
			found := patient
			return &found, nil
		}
	}
	return nil, exceptions.ErrNotFound("patients")
}

func (f *fakePatientClient) CreatePatient(ctx context.Context, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error) {
	return &clinic_dto.Patient{FirstName: request.FirstName, LastName: request.LastName}, nil
}

func (f *fakePatientClient) UpdatePatient(ctx context.Context, patientID int64, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error) {
	return &clinic_dto.Patient{ID: patientID, FirstName: request.FirstName, LastName: request.LastName}, nil
}

func (f *fakePatientClient) DeletePatient(ctx context.Context, patientID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, patientID)
	return nil
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
	return &clinic_dto.Doctor{Name: request.Name}, nil
}

func (f *fakeDoctorClient) UpdateDoctor(ctx context.Context, doctorID int64, request *clinic_dto.DoctorRequest) (*clinic_dto.Doctor, error) {
	return &clinic_dto.Doctor{ID: doctorID, Name: request.Name}, nil
}

func (f *fakeDoctorClient) DeleteDoctor(ctx context.Context, doctorID int64) error {
	return nil
}

type fakeInvoiceClient struct {
	mu       sync.Mutex
	invoices []clinic_dto.Invoice
	listErr  error
	lists    int
}

func (f *fakeInvoiceClient) ListInvoices(ctx context.Context) ([]clinic_dto.Invoice, error) {
	f.mu.Lock()
	f.lists++
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.invoices, nil
}

func (f *fakeInvoiceClient) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

func (f *fakeInvoiceClient) FindInvoiceByID(ctx context.Context, invoiceID int64) (*clinic_dto.Invoice, error) {
	return nil, exceptions.ErrNotFound("invoices")
}

func (f *fakeInvoiceClient) CreateInvoice(ctx context.Context, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error) {
	return &clinic_dto.Invoice{PatientID: request.PatientID}, nil
}

func (f *fakeInvoiceClient) UpdateInvoice(ctx context.Context, invoiceID int64, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error) {
	return &clinic_dto.Invoice{ID: invoiceID, PatientID: request.PatientID}, nil
}

func (f *fakeInvoiceClient) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	return nil
}

type fakeStudentClient struct {
	students    map[int64]clinic_dto.Student
	enrollments map[int64][]clinic_dto.Enrollment
	findErr     error
}

func (f *fakeStudentClient) FindStudentByID(ctx context.Context, studentID int64) (*clinic_dto.Student, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	student, ok := f.students[studentID]
	if !ok {
		return nil, exceptions.ErrNotFound("students")
	}
	return &student, nil
}

func (f *fakeStudentClient) ListEnrollments(ctx context.Context, studentID int64) ([]clinic_dto.Enrollment, error) {
	return f.enrollments[studentID], nil
}

// recordingRenderer keeps the calls a profile load made, in order.
type recordingRenderer struct {
	mu      sync.Mutex
	calls   []string
	loading bool
	bills   []clinic_dto.Invoice
	student *clinic_dto.Student
	serial  *int
}

func (r *recordingRenderer) record(call string) {
	r.calls = append(r.calls, call)
}

func (r *recordingRenderer) SetLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = loading
	if loading {
		r.record("loading:on")
		return
	}
	r.record("loading:off")
}

func (r *recordingRenderer) RenderPatientBasic(patient *clinic_dto.Patient, serial *int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serial = serial
	r.record("patient")
}

func (r *recordingRenderer) RenderBillCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("billCount")
}

func (r *recordingRenderer) RenderBillsTable(bills []clinic_dto.Invoice, directory clinic_dto.DoctorDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = bills
	r.record("bills")
}

func (r *recordingRenderer) RenderStudentBasic(student *clinic_dto.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.student = student
	r.record("student")
}

func (r *recordingRenderer) RenderEnrollmentCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("enrollmentCount")
}

func (r *recordingRenderer) RenderEnrollmentsTable(rows []clinic_dto.Enrollment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("enrollments")
}

func (r *recordingRenderer) RenderError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	r.record("error")
}

func (r *recordingRenderer) count(call string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) isLoading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}
