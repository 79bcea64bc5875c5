package requests

import "clinic-dashboard/internal/pkg/clinic_dto"

type PatientForm struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Age       *int    `json:"age" validate:"omitempty,gte=0"`
	Gender    *string `json:"gender"`
	Phone     string  `json:"phone"`
}

func (f *PatientForm) ToRequest() *clinic_dto.PatientRequest {
	return &clinic_dto.PatientRequest{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Age:       f.Age,
		Gender:    f.Gender,
		Phone:     f.Phone,
	}
}

func PatientFormFrom(patient *clinic_dto.Patient) *PatientForm {
	return &PatientForm{
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Phone:     patient.Phone,
	}
}
