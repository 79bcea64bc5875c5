package requests

import "clinic-dashboard/internal/pkg/clinic_dto"

type DoctorForm struct {
	Name      string  `json:"name" validate:"required"`
	Specialty *string `json:"specialty"`
	Schedule  *string `json:"schedule"`
	Phone     string  `json:"phone"`
}

func (f *DoctorForm) ToRequest() *clinic_dto.DoctorRequest {
	return &clinic_dto.DoctorRequest{
		Name:      f.Name,
		Specialty: f.Specialty,
		Schedule:  f.Schedule,
		Phone:     f.Phone,
	}
}

func DoctorFormFrom(doctor *clinic_dto.Doctor) *DoctorForm {
	return &DoctorForm{
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Schedule:  doctor.Schedule,
		Phone:     doctor.Phone,
	}
}
