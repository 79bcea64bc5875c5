package patients

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/clinic_api/resource"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type patientClient struct {
	resource *resource.Client[clinic_dto.Patient]
}

func NewPatientClient(http *resty.Client, logger *zap.Logger) contracts.PatientClient {
	return &patientClient{
		resource: resource.NewClient[clinic_dto.Patient](http, constvars.ResourcePatients, logger),
	}
}

func (c *patientClient) ListPatients(ctx context.Context) ([]clinic_dto.Patient, error) {
	return c.resource.ListAll(ctx)
}

func (c *patientClient) FindPatientByID(ctx context.Context, patientID int64) (*clinic_dto.Patient, error) {
	return c.resource.GetOne(ctx, patientID)
}

func (c *patientClient) CreatePatient(ctx context.Context, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error) {
	return c.resource.Create(ctx, request)
}

func (c *patientClient) UpdatePatient(ctx context.Context, patientID int64, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error) {
	return c.resource.Update(ctx, patientID, request)
}

func (c *patientClient) DeletePatient(ctx context.Context, patientID int64) error {
	return c.resource.Delete(ctx, patientID)
}
