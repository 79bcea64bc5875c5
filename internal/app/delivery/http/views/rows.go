package views

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"fmt"
	"strconv"
)

func PatientRow(patient clinic_dto.Patient) Row {
	return Row{
		ID: idString(patient.ID),
		Cells: []string{
			patient.FullName(),
			intOr(patient.Age, constvars.PlaceholderDash),
			stringOr(patient.Gender, constvars.PlaceholderDash),
			patient.Phone,
		},
	}
}

func DoctorRow(doctor clinic_dto.Doctor) Row {
	return Row{
		ID: idString(doctor.ID),
		Cells: []string{
			doctor.Name,
			stringOr(doctor.Specialty, ""),
			stringOr(doctor.Schedule, constvars.PlaceholderDash),
			doctor.Phone,
		},
	}
}

// InvoiceRow falls back to the raw ids when names were not resolved.
func InvoiceRow(invoice clinic_dto.Invoice) Row {
	patient := idString(invoice.PatientID)
	if invoice.PatientName != nil && *invoice.PatientName != "" {
		patient = *invoice.PatientName
	}
	doctor := ""
	if invoice.DoctorName != nil && *invoice.DoctorName != "" {
		doctor = *invoice.DoctorName
	} else if invoice.DoctorID != nil {
		doctor = idString(*invoice.DoctorID)
	}
	return Row{
		ID: idString(invoice.ID),
		Cells: []string{
			patient,
			doctor,
			stringOr(invoice.IssuedOn, ""),
			formatAmount(invoice.Amount),
		},
	}
}

func ProfileListRow(row responses.ProfileRow) Row {
	name := row.PatientName
	if name == "" {
		name = constvars.PlaceholderDash
	}
	return Row{
		ID:   idString(row.ID),
		Href: fmt.Sprintf("/profiles/%d", row.ID),
		Cells: []string{
			name,
			intOr(row.Age, constvars.PlaceholderDash),
			row.Phone,
			stringOr(row.DoctorName, ""),
		},
	}
}

// BillRow resolves doctor columns through directory. A known doctor with
// no specialty shows an empty cell, an unknown one a dash.
func BillRow(directory clinic_dto.DoctorDirectory) RowFunc[clinic_dto.Invoice] {
	return func(bill clinic_dto.Invoice) Row {
		doctor, ok := directory.DoctorNameFor(bill)
		if !ok {
			doctor = constvars.PlaceholderDash
		}
		specialty := constvars.PlaceholderDash
		if entry, found := directory.Lookup(bill.DoctorID); found {
			specialty = stringOr(entry.Specialty, "")
		}
		return Row{
			ID: idString(bill.ID),
			Cells: []string{
				doctor,
				specialty,
				formatAmount(bill.Amount),
				stringOr(bill.IssuedOn, constvars.PlaceholderDash),
				bill.Description,
			},
		}
	}
}

func EnrollmentRow(enrollment clinic_dto.Enrollment) Row {
	id := constvars.PlaceholderDash
	if enrollment.EnrollmentID != nil {
		id = idString(*enrollment.EnrollmentID)
	}
	fees := constvars.PlaceholderDash
	if enrollment.Fees != nil {
		fees = formatAmount(*enrollment.Fees)
	}
	return Row{
		ID: id,
		Cells: []string{
			id,
			stringOr(enrollment.CourseTitle, constvars.PlaceholderDash),
			stringOr(enrollment.CourseCodeOrAlias(), constvars.PlaceholderDash),
			stringOr(enrollment.TeacherName, constvars.PlaceholderDash),
			fees,
			intOr(enrollment.DurationWeeks, constvars.PlaceholderDash),
			stringOr(enrollment.EnrolledOn, constvars.PlaceholderDash),
		},
	}
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func intOr(value *int, fallback string) string {
	if value == nil {
		return fallback
	}
	return strconv.Itoa(*value)
}
