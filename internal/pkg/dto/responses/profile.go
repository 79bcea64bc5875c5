package responses

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"time"
)

const (
	ProfileKindPatient = "patient"
	ProfileKindStudent = "student"
)

// Profile is the aggregated view model of one profile page load. It is
// rebuilt on every load and never mutated afterwards.
type Profile struct {
	Kind        string                     `json:"kind"`
	SubjectID   int64                      `json:"subject_id"`
	Patient     *clinic_dto.Patient        `json:"patient,omitempty"`
	Serial      *int                       `json:"serial"`
	Bills       []clinic_dto.Invoice       `json:"bills,omitempty"`
	Doctors     clinic_dto.DoctorDirectory `json:"doctors,omitempty"`
	Student     *clinic_dto.Student        `json:"student,omitempty"`
	Enrollments []clinic_dto.Enrollment    `json:"enrollments,omitempty"`
	Generation  uint64                     `json:"generation"`
	LoadedAt    time.Time                  `json:"loaded_at"`
}

// ProfileRow is one line of the profiles list screen.
type ProfileRow struct {
	ID          int64   `json:"id"`
	PatientName string  `json:"patient_name"`
	Age         *int    `json:"age"`
	Phone       string  `json:"phone"`
	DoctorName  *string `json:"doctor_name"`
}

type ArchivedExport struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type PageVersion struct {
	SubjectID int64  `json:"subject_id"`
	Version   uint64 `json:"version"`
}
