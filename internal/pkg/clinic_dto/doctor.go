package clinic_dto

type Doctor struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Specialty *string `json:"specialty"`
	Schedule  *string `json:"schedule"`
	Phone     string  `json:"phone"`
	CreatedAt *string `json:"created_at,omitempty"`
}

type DoctorRequest struct {
	Name      string  `json:"name"`
	Specialty *string `json:"specialty"`
	Schedule  *string `json:"schedule"`
	Phone     string  `json:"phone"`
}
