package profiles

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/shared/events"
	"clinic-dashboard/internal/app/services/shared/forms"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RowRemover drops one rendered row without reloading the table.
type RowRemover interface {
	RemoveRow(regionID, rowID string) bool
}

type profileListUsecase struct {
	PatientClient contracts.PatientClient
	DoctorClient  contracts.DoctorClient
	InvoiceClient contracts.InvoiceClient
	Publisher     contracts.EventPublisher
	Editor        *forms.Editor
	Rows          RowRemover
	Log           *zap.Logger
	Now           func() time.Time
}

func NewProfileListUsecase(
	patientClient contracts.PatientClient,
	doctorClient contracts.DoctorClient,
	invoiceClient contracts.InvoiceClient,
	publisher contracts.EventPublisher,
	editor *forms.Editor,
	rows RowRemover,
	logger *zap.Logger,
) contracts.ProfileListUsecase {
	return &profileListUsecase{
		PatientClient: patientClient,
		DoctorClient:  doctorClient,
		InvoiceClient: invoiceClient,
		Publisher:     publisher,
		Editor:        editor,
		Rows:          rows,
		Log:           logger,
		Now:           time.Now,
	}
}

// Load lists every patient with the doctor of their most recent bill.
func (uc *profileListUsecase) Load(ctx context.Context) ([]responses.ProfileRow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileListUsecase.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		patients []clinic_dto.Patient
		doctors  []clinic_dto.Doctor
		invoices []clinic_dto.Invoice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		patients, err = uc.PatientClient.ListPatients(gctx)
		uc.logListFailure(requestID, constvars.ResourcePatients, err)
		return nil
	})
	g.Go(func() error {
		var err error
		doctors, err = uc.DoctorClient.ListDoctors(gctx)
		uc.logListFailure(requestID, constvars.ResourceDoctors, err)
		return nil
	})
	g.Go(func() error {
		var err error
		invoices, err = uc.InvoiceClient.ListInvoices(gctx)
		uc.logListFailure(requestID, constvars.ResourceInvoices, err)
		return nil
	})
	// List failures read as empty collections, so the group never fails.
	_ = g.Wait()

	directory := NewDoctorDirectory(doctors)
	now := uc.Now()
	rows := make([]responses.ProfileRow, 0, len(patients))
	for _, patient := range patients {
		row := responses.ProfileRow{
			ID:          patient.ID,
			PatientName: patient.FullName(),
			Age:         patient.DeriveAge(now),
			Phone:       patient.Phone,
		}
		if bills := OrderBills(invoices, patient.ID); len(bills) > 0 {
			if name, ok := directory.DoctorNameFor(bills[len(bills)-1]); ok {
				row.DoctorName = &name
			}
		}
		rows = append(rows, row)
	}

	uc.Log.Info("profileListUsecase.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(rows)),
	)
	return rows, nil
}

// Delete removes the row locally once the backend confirms, without a
// reload, and then announces the change.
func (uc *profileListUsecase) Delete(ctx context.Context, patientID int64) (*contracts.MutationResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileListUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := uc.PatientClient.DeletePatient(ctx, patientID); err != nil {
		message := constvars.AlertPatientDelFailed
		if errors.Is(err, exceptions.ErrResourceNotFound) {
			message = constvars.AlertPatientNotFound
		}
		uc.Log.Error("profileListUsecase.Delete error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		if flashErr := uc.Editor.Failure(ctx, message); flashErr != nil {
			return nil, flashErr
		}
		return &contracts.MutationResult{OK: false, Message: message}, nil
	}

	uc.Rows.RemoveRow(constvars.RegionProfilesBody, strconv.FormatInt(patientID, 10))
	if err := uc.Editor.Success(ctx, constvars.AlertPatientDeleted); err != nil {
		return nil, err
	}
	uc.Publisher.Publish(ctx, events.PatientsChanged(&patientID))

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventPatientDeleted, requestID,
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingScreenKey, constvars.ScreenProfiles),
	)
	return &contracts.MutationResult{OK: true, ID: &patientID, Message: constvars.AlertPatientDeleted}, nil
}

func (uc *profileListUsecase) logListFailure(requestID, resource string, err error) {
	if err == nil {
		return
	}
	uc.Log.Warn("profileListUsecase.Load list failed, using empty collection",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.Error(err),
	)
}

func (uc *profileListUsecase) TakeFlash(ctx context.Context) (*contracts.Flash, error) {
	return uc.Editor.TakeFlash(ctx)
}
