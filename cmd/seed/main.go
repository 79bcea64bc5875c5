package main

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/drivers/httpclient"
	"clinic-dashboard/internal/app/drivers/logger"
	"clinic-dashboard/internal/app/services/clinic_api/doctors"
	"clinic-dashboard/internal/app/services/clinic_api/invoices"
	"clinic-dashboard/internal/app/services/clinic_api/patients"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
}

var schedules = []string{
	"Mon-Fri 09:00-17:00",
	"Mon, Wed 08:00-12:00",
	"Tue, Thu 13:00-19:00",
	"Sat 09:00-13:00",
}

var genders = []string{"Male", "Female"}

// seed fills the clinic backend with fake doctors, patients and invoices
// through the same clients the dashboard uses.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	doctorCount := utils.GetEnvInt("SEED_DOCTORS", 5)
	patientCount := utils.GetEnvInt("SEED_PATIENTS", 20)
	invoicesPerPatient := utils.GetEnvInt("SEED_INVOICES_PER_PATIENT", 3)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	backend := httpclient.NewBackendClient(internalConfig)
	gofakeit.Seed(time.Now().UnixNano())

	requestID := utils.GetRequestID(ctx)

	var doctorIDs, patientIDs []int64
	err := utils.LogOperation(log, "seed_doctors", requestID, func() error {
		var err error
		doctorIDs, err = seedDoctors(ctx, doctors.NewDoctorClient(backend, log), doctorCount)
		return err
	})
	if err != nil {
		log.Fatal("seed doctors", zap.Error(err))
	}

	err = utils.LogOperation(log, "seed_patients", requestID, func() error {
		var err error
		patientIDs, err = seedPatients(ctx, patients.NewPatientClient(backend, log), patientCount)
		return err
	})
	if err != nil {
		log.Fatal("seed patients", zap.Error(err))
	}

	created := 0
	err = utils.LogOperation(log, "seed_invoices", requestID, func() error {
		var err error
		created, err = seedInvoices(ctx, invoices.NewInvoiceClient(backend, log), patientIDs, doctorIDs, invoicesPerPatient)
		return err
	})
	if err != nil {
		log.Fatal("seed invoices", zap.Error(err))
	}

	log.Info("seed complete",
		zap.Int("doctors", len(doctorIDs)),
		zap.Int("patients", len(patientIDs)),
		zap.Int("invoices", created),
	)
}

func seedDoctors(ctx context.Context, client contracts.DoctorClient, count int) ([]int64, error) {
	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		specialty := gofakeit.RandomString(specialties)
		schedule := gofakeit.RandomString(schedules)
		doctor, err := client.CreateDoctor(ctx, &clinic_dto.DoctorRequest{
			Name:      "Dr. " + gofakeit.Name(),
			Specialty: &specialty,
			Schedule:  &schedule,
			Phone:     gofakeit.Phone(),
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, doctor.ID)
	}
	return ids, nil
}

func seedPatients(ctx context.Context, client contracts.PatientClient, count int) ([]int64, error) {
	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		age := gofakeit.Number(1, 90)
		gender := gofakeit.RandomString(genders)
		patient, err := client.CreatePatient(ctx, &clinic_dto.PatientRequest{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Age:       &age,
			Gender:    &gender,
			Phone:     gofakeit.Phone(),
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, patient.ID)
	}
	return ids, nil
}

// seedInvoices leaves roughly one invoice in five undated and one in four
// without a doctor, so the profile ordering and placeholders have data.
func seedInvoices(ctx context.Context, client contracts.InvoiceClient, patientIDs, doctorIDs []int64, perPatient int) (int, error) {
	created := 0
	now := time.Now()
	for _, patientID := range patientIDs {
		for i := 0; i < perPatient; i++ {
			request := &clinic_dto.InvoiceRequest{
				PatientID:   patientID,
				Amount:      math.Round(gofakeit.Price(50, 2000)*100) / 100,
				Description: gofakeit.RandomString([]string{"Consultation", "Follow-up visit", "Lab work", "Vaccination", "X-ray"}),
			}
			if gofakeit.Number(1, 5) > 1 {
				issuedOn := gofakeit.DateRange(now.AddDate(-1, 0, 0), now).Format(time.DateOnly)
				request.IssuedOn = &issuedOn
			}
			if len(doctorIDs) > 0 && gofakeit.Number(1, 4) > 1 {
				doctorID := doctorIDs[gofakeit.Number(0, len(doctorIDs)-1)]
				request.DoctorID = &doctorID
			}
			if _, err := client.CreateInvoice(ctx, request); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
