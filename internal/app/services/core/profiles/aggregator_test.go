package profiles

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAggregator(patients *fakePatientClient, doctors *fakeDoctorClient, invoices *fakeInvoiceClient, students *fakeStudentClient) *Aggregator {
	aggregator := NewAggregator(patients, doctors, invoices, students, zap.NewNop())
	aggregator.Now = func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	return aggregator
}

func TestAggregatorLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Clinic Profile", func(t *testing.T) {
		patients := &fakePatientClient{patients: []clinic_dto.Patient{
			{ID: 3, FirstName: "Ann"},
			{ID: 42, FirstName: "Bo", LastName: "Li", DOB: strPtr("2000-05-31")},
		}}
		doctors := &fakeDoctorClient{doctors: []clinic_dto.Doctor{{ID: 7, Name: "A", Specialty: strPtr("Cardio")}}}
		invoices := &fakeInvoiceClient{invoices: []clinic_dto.Invoice{
			{ID: 99, PatientID: 42},
			{ID: 11, PatientID: 42, CreatedAt: strPtr("2024-02-01")},
			{ID: 10, PatientID: 42, CreatedAt: strPtr("2024-01-01"), DoctorID: int64Ptr(7)},
			{ID: 12, PatientID: 3},
			{ID: 13, PatientID: 5},
		}}

		profile, err := newTestAggregator(patients, doctors, invoices, &fakeStudentClient{}).Load(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, responses.ProfileKindPatient, profile.Kind)
		assert.Equal(t, []int64{10, 11, 99}, billIDs(profile.Bills))
		require.NotNil(t, profile.Serial)
		assert.Equal(t, 2, *profile.Serial)
		require.NotNil(t, profile.Patient.Age)
		assert.Equal(t, 25, *profile.Patient.Age, "age derived from dob")
		assert.Contains(t, profile.Doctors, int64(7))
	})

	t.Run("List Failures Are Empty Collections", func(t *testing.T) {
		patients := &fakePatientClient{patients: []clinic_dto.Patient{{ID: 42}}}
		doctors := &fakeDoctorClient{listErr: errors.New("down")}
		invoices := &fakeInvoiceClient{listErr: errors.New("down")}

		profile, err := newTestAggregator(patients, doctors, invoices, &fakeStudentClient{}).Load(ctx, 42)

		require.NoError(t, err)
		assert.Empty(t, profile.Bills)
		assert.Empty(t, profile.Doctors)
		require.NotNil(t, profile.Serial)
	})

	t.Run("Falls Back To Student", func(t *testing.T) {
		patients := &fakePatientClient{findErr: errors.New("connection refused")}
		students := &fakeStudentClient{
			students:    map[int64]clinic_dto.Student{42: {ID: 42, Name: strPtr("Sam")}},
			enrollments: map[int64][]clinic_dto.Enrollment{42: {{EnrollmentID: int64Ptr(1)}}},
		}

		profile, err := newTestAggregator(patients, &fakeDoctorClient{}, &fakeInvoiceClient{}, students).Load(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, responses.ProfileKindStudent, profile.Kind)
		assert.Equal(t, "Sam", *profile.Student.Name)
		assert.Len(t, profile.Enrollments, 1)
	})

	t.Run("Neither Patient Nor Student", func(t *testing.T) {
		_, err := newTestAggregator(&fakePatientClient{}, &fakeDoctorClient{}, &fakeInvoiceClient{}, &fakeStudentClient{}).Load(ctx, 42)

		require.Error(t, err)
		assert.True(t, errors.Is(err, exceptions.ErrProfileNotFound))
	})

	t.Run("Student Lookup Failure Is Returned", func(t *testing.T) {
		backendDown := exceptions.ErrBackendStatus(500, "students")
		students := &fakeStudentClient{findErr: backendDown}

		profile, err := newTestAggregator(&fakePatientClient{}, &fakeDoctorClient{}, &fakeInvoiceClient{}, students).Load(ctx, 42)

		assert.Nil(t, profile)
		require.Error(t, err)
		assert.False(t, errors.Is(err, exceptions.ErrProfileNotFound))
		assert.Equal(t, constvars.StatusBadGateway, exceptions.StatusCodeOf(err))
	})
}
