package students

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/clinic_api/resource"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// studentClient reads the legacy student records. It never writes.
type studentClient struct {
	students    *resource.Client[clinic_dto.Student]
	enrollments *resource.Client[clinic_dto.Enrollment]
}

func NewStudentClient(http *resty.Client, logger *zap.Logger) contracts.StudentClient {
	return &studentClient{
		students:    resource.NewClient[clinic_dto.Student](http, constvars.ResourceStudents, logger),
		enrollments: resource.NewClient[clinic_dto.Enrollment](http, constvars.ResourceStudents, logger),
	}
}

func (c *studentClient) FindStudentByID(ctx context.Context, studentID int64) (*clinic_dto.Student, error) {
	return c.students.GetOne(ctx, studentID)
}

func (c *studentClient) ListEnrollments(ctx context.Context, studentID int64) ([]clinic_dto.Enrollment, error) {
	return c.enrollments.ListAt(ctx, fmt.Sprintf("/%d/%s", studentID, constvars.ResourceEnrollments))
}
