package patients

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/shared/events"
	"clinic-dashboard/internal/app/services/shared/forms"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/requests"
	"clinic-dashboard/internal/pkg/exceptions"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientClient contracts.PatientClient
	Publisher     contracts.EventPublisher
	Editor        *forms.Editor
	Log           *zap.Logger
	Now           func() time.Time
}

func NewPatientUsecase(
	patientClient contracts.PatientClient,
	publisher contracts.EventPublisher,
	editor *forms.Editor,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientClient: patientClient,
		Publisher:     publisher,
		Editor:        editor,
		Log:           logger,
		Now:           time.Now,
	}
}

// Load lists patients with age derived from dob where the backend left it
// empty. A failed fetch shows an alert and an empty table.
func (uc *patientUsecase) Load(ctx context.Context) ([]clinic_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientClient.ListPatients(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.Load error listing patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if flashErr := uc.Editor.Failure(ctx, constvars.AlertRequestFailed); flashErr != nil {
			return nil, flashErr
		}
		return []clinic_dto.Patient{}, nil
	}

	now := uc.Now()
	for i := range patients {
		patients[i].Age = patients[i].DeriveAge(now)
	}

	uc.Log.Info("patientUsecase.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

// Submit creates or updates depending on the editor mode.
func (uc *patientUsecase) Submit(ctx context.Context, form *requests.PatientForm) (*contracts.MutationResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(form); err != nil {
		message := utils.FormatFirstValidationError(err)
		uc.Log.Info("patientUsecase.Submit invalid form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.fail(ctx, message)
	}

	editingID, err := uc.Editor.Mode(ctx)
	if err != nil {
		return nil, err
	}

	var (
		saved   *clinic_dto.Patient
		message string
	)
	if editingID == nil {
		saved, err = uc.PatientClient.CreatePatient(ctx, form.ToRequest())
		message = constvars.AlertPatientAdded
	} else {
		saved, err = uc.PatientClient.UpdatePatient(ctx, *editingID, form.ToRequest())
		message = constvars.AlertUpdated
	}
	if err != nil {
		uc.Log.Error("patientUsecase.Submit error saving patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, exceptions.ErrResourceNotFound) {
			return uc.fail(ctx, constvars.AlertPatientNotFound)
		}
		return uc.fail(ctx, constvars.AlertRequestFailed)
	}

	id := saved.ID
	if editingID != nil {
		id = *editingID
	}
	if err := uc.Editor.Reset(ctx); err != nil {
		return nil, err
	}
	if err := uc.Editor.Success(ctx, message); err != nil {
		return nil, err
	}
	uc.Publisher.Publish(ctx, events.PatientsChanged(&id))

	uc.Log.Info("patientUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, id),
	)
	return &contracts.MutationResult{OK: true, ID: &id, Message: message}, nil
}

// Edit switches the form to Editing(patientID) and returns its prefilled values.
func (uc *patientUsecase) Edit(ctx context.Context, patientID int64) (*requests.PatientForm, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Edit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientClient.FindPatientByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.Edit error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if flashErr := uc.Editor.Failure(ctx, constvars.AlertPatientNotFound); flashErr != nil {
			return nil, flashErr
		}
		return nil, err
	}
	if err := uc.Editor.Begin(ctx, patientID); err != nil {
		return nil, err
	}
	return requests.PatientFormFrom(patient), nil
}

func (uc *patientUsecase) Cancel(ctx context.Context) error {
	return uc.Editor.Reset(ctx)
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID int64) (*contracts.MutationResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := uc.PatientClient.DeletePatient(ctx, patientID); err != nil {
		uc.Log.Error("patientUsecase.Delete error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.fail(ctx, constvars.AlertPatientDelFailed)
	}

	if editingID, err := uc.Editor.Mode(ctx); err == nil && editingID != nil && *editingID == patientID {
		if err := uc.Editor.Reset(ctx); err != nil {
			return nil, err
		}
	}
	if err := uc.Editor.Success(ctx, constvars.AlertPatientDeleted); err != nil {
		return nil, err
	}
	uc.Publisher.Publish(ctx, events.PatientsChanged(&patientID))

	uc.Log.Info("patientUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return &contracts.MutationResult{OK: true, ID: &patientID, Message: constvars.AlertPatientDeleted}, nil
}

func (uc *patientUsecase) EditingID(ctx context.Context) (*int64, error) {
	return uc.Editor.Mode(ctx)
}

// TakeFlash returns the pending alert once.
func (uc *patientUsecase) TakeFlash(ctx context.Context) (*contracts.Flash, error) {
	return uc.Editor.TakeFlash(ctx)
}

func (uc *patientUsecase) fail(ctx context.Context, message string) (*contracts.MutationResult, error) {
	if err := uc.Editor.Failure(ctx, message); err != nil {
		return nil, err
	}
	return &contracts.MutationResult{OK: false, Message: message}, nil
}
