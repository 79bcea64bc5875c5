package profiles

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Aggregator builds the profile view model of one subject from the patient,
// invoice and doctor resources, or from the legacy student records.
type Aggregator struct {
	PatientClient contracts.PatientClient
	DoctorClient  contracts.DoctorClient
	InvoiceClient contracts.InvoiceClient
	StudentClient contracts.StudentClient
	Log           *zap.Logger
	Now           func() time.Time
}

func NewAggregator(
	patientClient contracts.PatientClient,
	doctorClient contracts.DoctorClient,
	invoiceClient contracts.InvoiceClient,
	studentClient contracts.StudentClient,
	logger *zap.Logger,
) *Aggregator {
	return &Aggregator{
		PatientClient: patientClient,
		DoctorClient:  doctorClient,
		InvoiceClient: invoiceClient,
		StudentClient: studentClient,
		Log:           logger,
		Now:           time.Now,
	}
}

// Load returns the profile of subjectID. A subject that is neither a patient
// nor a student yields exceptions.ErrProfileNotFound.
func (a *Aggregator) Load(ctx context.Context, subjectID int64) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	a.Log.Info("Aggregator.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
	)

	patient, err := a.PatientClient.FindPatientByID(ctx, subjectID)
	if err == nil && patient != nil {
		return a.loadClinicProfile(ctx, patient)
	}

	if err != nil && !errors.Is(err, exceptions.ErrResourceNotFound) {
		a.Log.Warn("Aggregator.Load patient lookup failed, trying student profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
			zap.Error(err),
		)
	}
	return a.loadStudentProfile(ctx, subjectID)
}

func (a *Aggregator) loadClinicProfile(ctx context.Context, patient *clinic_dto.Patient) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var (
		invoices []clinic_dto.Invoice
		doctors  []clinic_dto.Doctor
		patients []clinic_dto.Patient
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = a.InvoiceClient.ListInvoices(gctx)
		a.logListFailure(gctx, constvars.ResourceInvoices, err)
		return nil
	})
	g.Go(func() error {
		var err error
		doctors, err = a.DoctorClient.ListDoctors(gctx)
		a.logListFailure(gctx, constvars.ResourceDoctors, err)
		return nil
	})
	g.Go(func() error {
		var err error
		patients, err = a.PatientClient.ListPatients(gctx)
		a.logListFailure(gctx, constvars.ResourcePatients, err)
		return nil
	})
	// List failures read as empty collections, so the group never fails.
	_ = g.Wait()

	subject := *patient
	subject.Age = patient.DeriveAge(a.Now())

	profile := &responses.Profile{
		Kind:      responses.ProfileKindPatient,
		SubjectID: patient.ID,
		Patient:   &subject,
		Serial:    ComputeSerial(patients, patient.ID),
		Bills:     OrderBills(invoices, patient.ID),
		Doctors:   NewDoctorDirectory(doctors),
		LoadedAt:  a.Now(),
	}

	a.Log.Info("Aggregator.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, patient.ID),
		zap.String(constvars.LoggingModeKey, profile.Kind),
		zap.Int(constvars.LoggingCountKey, len(profile.Bills)),
	)
	return profile, nil
}

func (a *Aggregator) loadStudentProfile(ctx context.Context, subjectID int64) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var (
		student     *clinic_dto.Student
		enrollments []clinic_dto.Enrollment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := a.StudentClient.FindStudentByID(gctx, subjectID)
		if err != nil && !errors.Is(err, exceptions.ErrResourceNotFound) {
			return err
		}
		student = found
		return nil
	})
	g.Go(func() error {
		var err error
		enrollments, err = a.StudentClient.ListEnrollments(gctx, subjectID)
		a.logListFailure(gctx, constvars.ResourceEnrollments, err)
		return nil
	})
	if err := g.Wait(); err != nil {
		a.Log.Error("Aggregator.Load student lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
			zap.Error(err),
		)
		return nil, err
	}
	if student == nil {
		a.Log.Info("Aggregator.Load no profile for subject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
		)
		return nil, exceptions.ErrProfileMissing()
	}

	profile := &responses.Profile{
		Kind:        responses.ProfileKindStudent,
		SubjectID:   subjectID,
		Student:     student,
		Enrollments: enrollments,
		LoadedAt:    a.Now(),
	}

	a.Log.Info("Aggregator.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
		zap.String(constvars.LoggingModeKey, profile.Kind),
		zap.Int(constvars.LoggingCountKey, len(enrollments)),
	)
	return profile, nil
}

func (a *Aggregator) logListFailure(ctx context.Context, resource string, err error) {
	if err == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	a.Log.Warn("Aggregator.Load list failed, using empty collection",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.Error(err),
	)
}
