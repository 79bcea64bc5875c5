package invoices

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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type invoiceUsecase struct {
	InvoiceClient contracts.InvoiceClient
	PatientClient contracts.PatientClient
	DoctorClient  contracts.DoctorClient
	Publisher     contracts.EventPublisher
	Editor        *forms.Editor
	Log           *zap.Logger
}

func NewInvoiceUsecase(
	invoiceClient contracts.InvoiceClient,
	patientClient contracts.PatientClient,
	doctorClient contracts.DoctorClient,
	publisher contracts.EventPublisher,
	editor *forms.Editor,
	logger *zap.Logger,
) contracts.InvoiceUsecase {
	return &invoiceUsecase{
		InvoiceClient: invoiceClient,
		PatientClient: patientClient,
		DoctorClient:  doctorClient,
		Publisher:     publisher,
		Editor:        editor,
		Log:           logger,
	}
}

// Load lists invoices and fills in patient and doctor names the backend did
// not join.
func (uc *invoiceUsecase) Load(ctx context.Context) ([]clinic_dto.Invoice, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		invoices   []clinic_dto.Invoice
		invoiceErr error
		options    *contracts.InvoiceOptions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		invoices, invoiceErr = uc.InvoiceClient.ListInvoices(gctx)
		return nil
	})
	g.Go(func() error {
		options = uc.options(gctx, requestID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if invoiceErr != nil {
		uc.Log.Error("invoiceUsecase.Load error listing invoices",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(invoiceErr),
		)
		if err := uc.Editor.Failure(ctx, constvars.AlertRequestFailed); err != nil {
			return nil, err
		}
		return []clinic_dto.Invoice{}, nil
	}

	patientNames := make(map[int64]string, len(options.Patients))
	for _, patient := range options.Patients {
		patientNames[patient.ID] = patient.FullName()
	}
	doctorNames := make(map[int64]string, len(options.Doctors))
	for _, doctor := range options.Doctors {
		doctorNames[doctor.ID] = doctor.Name
	}

	for i := range invoices {
		invoice := &invoices[i]
		if invoice.PatientName == nil {
			if name, ok := patientNames[invoice.PatientID]; ok {
				invoice.PatientName = &name
			}
		}
		if invoice.DoctorName == nil && invoice.DoctorID != nil {
			if name, ok := doctorNames[*invoice.DoctorID]; ok {
				invoice.DoctorName = &name
			}
		}
	}

	uc.Log.Info("invoiceUsecase.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(invoices)),
	)
	return invoices, nil
}

// Options lists the patients and doctors offered by the invoice form.
func (uc *invoiceUsecase) Options(ctx context.Context) (*contracts.InvoiceOptions, error) {
	return uc.options(ctx, utils.GetRequestID(ctx)), nil
}

func (uc *invoiceUsecase) options(ctx context.Context, requestID string) *contracts.InvoiceOptions {
	options := &contracts.InvoiceOptions{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		patients, err := uc.PatientClient.ListPatients(gctx)
		if err != nil {
			uc.Log.Warn("invoiceUsecase.Options error listing patients",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		options.Patients = patients
		return nil
	})
	g.Go(func() error {
		doctors, err := uc.DoctorClient.ListDoctors(gctx)
		if err != nil {
			uc.Log.Warn("invoiceUsecase.Options error listing doctors",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		options.Doctors = doctors
		return nil
	})
	_ = g.Wait()

	return options
}

func (uc *invoiceUsecase) Submit(ctx context.Context, form *requests.InvoiceForm) (*contracts.MutationResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.Submit called",
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
		saved   *clinic_dto.Invoice
		message = constvars.AlertInvoiceCreated
	)
	if editingID == nil {
		saved, err = uc.InvoiceClient.CreateInvoice(ctx, form.ToRequest())
	} else {
		saved, err = uc.InvoiceClient.UpdateInvoice(ctx, *editingID, form.ToRequest())
		message = constvars.AlertUpdated
	}
	if err != nil {
		uc.Log.Error("invoiceUsecase.Submit error saving invoice",
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
	patientID := form.PatientID
	uc.Publisher.Publish(ctx, events.InvoicesChanged(&patientID))

	uc.Log.Info("invoiceUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingResourceIDKey, id),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return &contracts.MutationResult{OK: true, ID: &id, Message: message}, nil
}

func (uc *invoiceUsecase) Edit(ctx context.Context, invoiceID int64) (*requests.InvoiceForm, error) {
	invoice, err := uc.InvoiceClient.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		uc.Log.Error("invoiceUsecase.Edit error fetching invoice",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int64(constvars.LoggingResourceIDKey, invoiceID),
			zap.Error(err),
		)
		if flashErr := uc.Editor.Failure(ctx, constvars.AlertRecordNotFound); flashErr != nil {
			return nil, flashErr
		}
		return nil, err
	}
	if err := uc.Editor.Begin(ctx, invoiceID); err != nil {
		return nil, err
	}
	return requests.InvoiceFormFrom(invoice), nil
}

func (uc *invoiceUsecase) Cancel(ctx context.Context) error {
	return uc.Editor.Reset(ctx)
}

// Delete announces the change without a patient hint, so every open profile
// reloads.
func (uc *invoiceUsecase) Delete(ctx context.Context, invoiceID int64) (*contracts.MutationResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingResourceIDKey, invoiceID),
	)

	if err := uc.InvoiceClient.DeleteInvoice(ctx, invoiceID); err != nil {
		uc.Log.Error("invoiceUsecase.Delete error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.fail(ctx, constvars.AlertRequestFailed)
	}
	if editingID, err := uc.Editor.Mode(ctx); err == nil && editingID != nil && *editingID == invoiceID {
		if err := uc.Editor.Reset(ctx); err != nil {
			return nil, err
		}
	}
	if err := uc.Editor.Success(ctx, constvars.AlertDeleted); err != nil {
		return nil, err
	}
	uc.Publisher.Publish(ctx, events.InvoicesChanged(nil))

	return &contracts.MutationResult{OK: true, ID: &invoiceID, Message: constvars.AlertDeleted}, nil
}

func (uc *invoiceUsecase) EditingID(ctx context.Context) (*int64, error) {
	return uc.Editor.Mode(ctx)
}

func (uc *invoiceUsecase) TakeFlash(ctx context.Context) (*contracts.Flash, error) {
	return uc.Editor.TakeFlash(ctx)
}

func (uc *invoiceUsecase) fail(ctx context.Context, message string) (*contracts.MutationResult, error) {
	if err := uc.Editor.Failure(ctx, message); err != nil {
		return nil, err
	}
	return &contracts.MutationResult{OK: false, Message: message}, nil
}
