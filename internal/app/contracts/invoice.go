package contracts

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/dto/requests"
	"context"
)

type InvoiceClient interface {
	ListInvoices(ctx context.Context) ([]clinic_dto.Invoice, error)
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*clinic_dto.Invoice, error)
	CreateInvoice(ctx context.Context, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID int64, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceOptions feeds the patient and doctor selects of the invoice form.
type InvoiceOptions struct {
	Patients []clinic_dto.Patient
	Doctors  []clinic_dto.Doctor
}

type InvoiceUsecase interface {
	Load(ctx context.Context) ([]clinic_dto.Invoice, error)
	Options(ctx context.Context) (*InvoiceOptions, error)
	Submit(ctx context.Context, form *requests.InvoiceForm) (*MutationResult, error)
	Edit(ctx context.Context, invoiceID int64) (*requests.InvoiceForm, error)
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, invoiceID int64) (*MutationResult, error)
	EditingID(ctx context.Context) (*int64, error)
	TakeFlash(ctx context.Context) (*Flash, error)
}
