package profiles

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"sort"
	"time"
)

// OrderBills keeps the invoices of one patient, oldest first. Invoices with a
// missing or unparsable created_at go last. Ties fall back to ascending id.
func OrderBills(invoices []clinic_dto.Invoice, patientID int64) []clinic_dto.Invoice {
	type keyed struct {
		invoice clinic_dto.Invoice
		at      time.Time
		dated   bool
	}

	selected := make([]keyed, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.PatientID != patientID {
			continue
		}
		entry := keyed{invoice: invoice}
		if invoice.CreatedAt != nil {
			entry.at, entry.dated = clinic_dto.ParseTimestamp(*invoice.CreatedAt)
		}
		selected = append(selected, entry)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.dated != b.dated {
			return a.dated
		}
		if a.dated && !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.invoice.ID < b.invoice.ID
	})

	bills := make([]clinic_dto.Invoice, 0, len(selected))
	for _, entry := range selected {
		bills = append(bills, entry.invoice)
	}
	return bills
}

// NewDoctorDirectory indexes doctors by id. On duplicate ids the later doctor
// in fetch order wins.
func NewDoctorDirectory(doctors []clinic_dto.Doctor) clinic_dto.DoctorDirectory {
	directory := make(clinic_dto.DoctorDirectory, len(doctors))
	for _, doctor := range doctors {
		directory[doctor.ID] = clinic_dto.DoctorEntry{
			Name:      doctor.Name,
			Specialty: doctor.Specialty,
		}
	}
	return directory
}

// ComputeSerial is the 1-based position of patientID in the patient list as
// fetched, or nil when the id is not listed.
func ComputeSerial(patients []clinic_dto.Patient, patientID int64) *int {
	for i, patient := range patients {
		if patient.ID == patientID {
			serial := i + 1
			return &serial
		}
	}
	return nil
}
