package requests

import "clinic-dashboard/internal/pkg/clinic_dto"

type InvoiceForm struct {
	PatientID   int64   `json:"patient_id" validate:"required"`
	DoctorID    *int64  `json:"doctor_id"`
	Amount      float64 `json:"amount" validate:"required"`
	IssuedOn    *string `json:"issued_on"`
	Description string  `json:"description"`
}

func (f *InvoiceForm) ToRequest() *clinic_dto.InvoiceRequest {
	return &clinic_dto.InvoiceRequest{
		PatientID:   f.PatientID,
		DoctorID:    f.DoctorID,
		Amount:      f.Amount,
		IssuedOn:    f.IssuedOn,
		Description: f.Description,
	}
}

func InvoiceFormFrom(invoice *clinic_dto.Invoice) *InvoiceForm {
	return &InvoiceForm{
		PatientID:   invoice.PatientID,
		DoctorID:    invoice.DoctorID,
		Amount:      invoice.Amount,
		IssuedOn:    invoice.IssuedOn,
		Description: invoice.Description,
	}
}
