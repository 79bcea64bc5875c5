package doctors

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/shared/forms"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/requests"
	"clinic-dashboard/internal/pkg/exceptions"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"errors"

	"go.uber.org/zap"
)

// doctorUsecase publishes no change event: profile pages pick up doctor
// names on their next load.
type doctorUsecase struct {
	DoctorClient contracts.DoctorClient
	Editor       *forms.Editor
	Log          *zap.Logger
}

func NewDoctorUsecase(doctorClient contracts.DoctorClient, editor *forms.Editor, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorClient: doctorClient,
		Editor:       editor,
		Log:          logger,
	}
}

func (uc *doctorUsecase) Load(ctx context.Context) ([]clinic_dto.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorClient.ListDoctors(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.Load error listing doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if flashErr := uc.Editor.Failure(ctx, constvars.AlertRequestFailed); flashErr != nil {
			return nil, flashErr
		}
		return []clinic_dto.Doctor{}, nil
	}

	uc.Log.Info("doctorUsecase.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(doctors)),
	)
	return doctors, nil
}

func (uc *doctorUsecase) Submit(ctx context.Context, form *requests.DoctorForm) (*contracts.MutationResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(form); err != nil {
		return uc.fail(ctx, utils.FormatFirstValidationError(err))
	}

	editingID, err := uc.Editor.Mode(ctx)
	if err != nil {
		return nil, err
	}

	var (
		saved   *clinic_dto.Doctor
		message = constvars.AlertDoctorAdded
	)
	if editingID == nil {
		saved, err = uc.DoctorClient.CreateDoctor(ctx, form.ToRequest())
	} else {
		saved, err = uc.DoctorClient.UpdateDoctor(ctx, *editingID, form.ToRequest())
		message = constvars.AlertUpdated
	}
	if err != nil {
		uc.Log.Error("doctorUsecase.Submit error saving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, exceptions.ErrResourceNotFound) {
			return uc.fail(ctx, constvars.AlertRecordNotFound)
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

	uc.Log.Info("doctorUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingResourceIDKey, id),
	)
	return &contracts.MutationResult{OK: true, ID: &id, Message: message}, nil
}

func (uc *doctorUsecase) Edit(ctx context.Context, doctorID int64) (*requests.DoctorForm, error) {
	doctor, err := uc.DoctorClient.FindDoctorByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.Edit error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int64(constvars.LoggingResourceIDKey, doctorID),
			zap.Error(err),
		)
		if flashErr := uc.Editor.Failure(ctx, constvars.AlertRecordNotFound); flashErr != nil {
			return nil, flashErr
		}
		return nil, err
	}
	if err := uc.Editor.Begin(ctx, doctorID); err != nil {
		return nil, err
	}
	return requests.DoctorFormFrom(doctor), nil
}

func (uc *doctorUsecase) Cancel(ctx context.Context) error {
	return uc.Editor.Reset(ctx)
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID int64) (*contracts.MutationResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingResourceIDKey, doctorID),
	)

	if err := uc.DoctorClient.DeleteDoctor(ctx, doctorID); err != nil {
		uc.Log.Error("doctorUsecase.Delete error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.fail(ctx, constvars.AlertRequestFailed)
	}
	if editingID, err := uc.Editor.Mode(ctx); err == nil && editingID != nil && *editingID == doctorID {
		if err := uc.Editor.Reset(ctx); err != nil {
			return nil, err
		}
	}
	if err := uc.Editor.Success(ctx, constvars.AlertDeleted); err != nil {
		return nil, err
	}
	return &contracts.MutationResult{OK: true, ID: &doctorID, Message: constvars.AlertDeleted}, nil
}

func (uc *doctorUsecase) EditingID(ctx context.Context) (*int64, error) {
	return uc.Editor.Mode(ctx)
}

func (uc *doctorUsecase) TakeFlash(ctx context.Context) (*contracts.Flash, error) {
	return uc.Editor.TakeFlash(ctx)
}

func (uc *doctorUsecase) fail(ctx context.Context, message string) (*contracts.MutationResult, error) {
	if err := uc.Editor.Failure(ctx, message); err != nil {
		return nil, err
	}
	return &contracts.MutationResult{OK: false, Message: message}, nil
}
