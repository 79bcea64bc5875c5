package doctors

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/clinic_api/resource"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type doctorClient struct {
	resource *resource.Client[clinic_dto.Doctor]
}

func NewDoctorClient(http *resty.Client, logger *zap.Logger) contracts.DoctorClient {
	return &doctorClient{
		resource: resource.NewClient[clinic_dto.Doctor](http, constvars.ResourceDoctors, logger),
	}
}

func (c *doctorClient) ListDoctors(ctx context.Context) ([]clinic_dto.Doctor, error) {
	return c.resource.ListAll(ctx)
}

func (c *doctorClient) FindDoctorByID(ctx context.Context, doctorID int64) (*clinic_dto.Doctor, error) {
	return c.resource.GetOne(ctx, doctorID)
}

func (c *doctorClient) CreateDoctor(ctx context.Context, request *clinic_dto.DoctorRequest) (*clinic_dto.Doctor, error) {
	return c.resource.Create(ctx, request)
}

func (c *doctorClient) UpdateDoctor(ctx context.Context, doctorID int64, request *clinic_dto.DoctorRequest) (*clinic_dto.Doctor, error) {
	return c.resource.Update(ctx, doctorID, request)
}

func (c *doctorClient) DeleteDoctor(ctx context.Context, doctorID int64) error {
	return c.resource.Delete(ctx, doctorID)
}
