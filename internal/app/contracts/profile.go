package contracts

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exporter"
	"context"
)

// ProfileRenderer draws the profile page regions.
type ProfileRenderer interface {
	SetLoading(loading bool)
	RenderPatientBasic(patient *clinic_dto.Patient, serial *int)
	RenderBillCount(count int)
	RenderBillsTable(bills []clinic_dto.Invoice, directory clinic_dto.DoctorDirectory)
	RenderStudentBasic(student *clinic_dto.Student)
	RenderEnrollmentCount(count int)
	RenderEnrollmentsTable(rows []clinic_dto.Enrollment)
	RenderError()
}

type ProfileController interface {
	Activate(ctx context.Context, subjectID int64)
	Reload(ctx context.Context)
	Deactivate()
	Current() *responses.Profile
	WithSubject(subjectID int64, view func(profile *responses.Profile)) error
	Export(ctx context.Context, subjectID int64, format string) (*exporter.Document, error)
	ArchiveExport(ctx context.Context, subjectID int64, format string) (*responses.ArchivedExport, error)
}

type ProfileListUsecase interface {
	Load(ctx context.Context) ([]responses.ProfileRow, error)
	Delete(ctx context.Context, patientID int64) (*MutationResult, error)
	TakeFlash(ctx context.Context) (*Flash, error)
}
