package contracts

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"context"
)

type StudentClient interface {
	FindStudentByID(ctx context.Context, studentID int64) (*clinic_dto.Student, error)
	ListEnrollments(ctx context.Context, studentID int64) ([]clinic_dto.Enrollment, error)
}
