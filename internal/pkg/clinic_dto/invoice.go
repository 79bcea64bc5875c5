package clinic_dto

type Invoice struct {
	ID          int64   `json:"id"`
	PatientID   int64   `json:"patient_id"`
	DoctorID    *int64  `json:"doctor_id"`
	Amount      float64 `json:"amount"`
	IssuedOn    *string `json:"issued_on"`
	Description string  `json:"description"`
	CreatedAt   *string `json:"created_at,omitempty"`

	// Filled by the backend join, or by the invoices screen when it is not.
	PatientName *string `json:"patient_name,omitempty"`
	DoctorName  *string `json:"doctor_name,omitempty"`
}

type InvoiceRequest struct {
	PatientID   int64   `json:"patient_id"`
	DoctorID    *int64  `json:"doctor_id"`
	Amount      float64 `json:"amount"`
	IssuedOn    *string `json:"issued_on"`
	Description string  `json:"description"`
}
