package contracts

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/dto/requests"
	"context"
)

type DoctorClient interface {
	ListDoctors(ctx context.Context) ([]clinic_dto.Doctor, error)
	FindDoctorByID(ctx context.Context, doctorID int64) (*clinic_dto.Doctor, error)
	CreateDoctor(ctx context.Context, request *clinic_dto.DoctorRequest) (*clinic_dto.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID int64, request *clinic_dto.DoctorRequest) (*clinic_dto.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID int64) error
}

type DoctorUsecase interface {
	Load(ctx context.Context) ([]clinic_dto.Doctor, error)
	Submit(ctx context.Context, form *requests.DoctorForm) (*MutationResult, error)
	Edit(ctx context.Context, doctorID int64) (*requests.DoctorForm, error)
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, doctorID int64) (*MutationResult, error)
	EditingID(ctx context.Context) (*int64, error)
	TakeFlash(ctx context.Context) (*Flash, error)
}
