package contracts

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/dto/requests"
	"context"
)

type PatientClient interface {
	ListPatients(ctx context.Context) ([]clinic_dto.Patient, error)
	FindPatientByID(ctx context.Context, patientID int64) (*clinic_dto.Patient, error)
	CreatePatient(ctx context.Context, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error)
	UpdatePatient(ctx context.Context, patientID int64, request *clinic_dto.PatientRequest) (*clinic_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID int64) error
}

type PatientUsecase interface {
	Load(ctx context.Context) ([]clinic_dto.Patient, error)
	Submit(ctx context.Context, form *requests.PatientForm) (*MutationResult, error)
	Edit(ctx context.Context, patientID int64) (*requests.PatientForm, error)
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, patientID int64) (*MutationResult, error)
	EditingID(ctx context.Context) (*int64, error)
	TakeFlash(ctx context.Context) (*Flash, error)
}
