package profiles

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/exporter"
	"fmt"
	"strconv"
)

// BillsExportSpec is the fixed projection of a patient's bills.
func BillsExportSpec(patientID int64, directory clinic_dto.DoctorDirectory) exporter.Spec[clinic_dto.Invoice] {
	return exporter.Spec[clinic_dto.Invoice]{
		BaseName: fmt.Sprintf("patient_%d_bills", patientID),
		Title:    fmt.Sprintf("Patient %d Bills", patientID),
		Columns: []exporter.Column[clinic_dto.Invoice]{
			{Key: "id", Label: "Invoice ID", Value: func(bill clinic_dto.Invoice) string {
				return strconv.FormatInt(bill.ID, 10)
			}},
			{Key: "doctor", Label: "Doctor", Value: func(bill clinic_dto.Invoice) string {
				if name, ok := directory.DoctorNameFor(bill); ok {
					return name
				}
				return constvars.PlaceholderDash
			}},
			{Key: "amount", Label: "Amount", Value: func(bill clinic_dto.Invoice) string {
				return formatAmount(bill.Amount)
			}},
			{Key: "issued_on", Label: "Issued On", Value: func(bill clinic_dto.Invoice) string {
				return stringOrEmpty(bill.IssuedOn)
			}},
			{Key: "description", Label: "Description", Value: func(bill clinic_dto.Invoice) string {
				return bill.Description
			}},
		},
	}
}

// EnrollmentsExportSpec is the fixed projection of a student's enrollments.
func EnrollmentsExportSpec(studentID int64) exporter.Spec[clinic_dto.Enrollment] {
	return exporter.Spec[clinic_dto.Enrollment]{
		BaseName: fmt.Sprintf("student_%d_enrollments", studentID),
		Title:    fmt.Sprintf("Student %d Enrollments", studentID),
		Columns: []exporter.Column[clinic_dto.Enrollment]{
			{Key: "enrollment_id", Label: "Enroll ID", Value: func(row clinic_dto.Enrollment) string {
				if row.EnrollmentID == nil {
					return ""
				}
				return strconv.FormatInt(*row.EnrollmentID, 10)
			}},
			{Key: "course_title", Label: "Course", Value: func(row clinic_dto.Enrollment) string {
				return stringOrEmpty(row.CourseTitle)
			}},
			{Key: "course_code", Label: "Code", Value: func(row clinic_dto.Enrollment) string {
				return stringOrEmpty(row.CourseCodeOrAlias())
			}},
			{Key: "teacher_name", Label: "Teacher", Value: func(row clinic_dto.Enrollment) string {
				return stringOrEmpty(row.TeacherName)
			}},
			{Key: "fees", Label: "Fees", Value: func(row clinic_dto.Enrollment) string {
				if row.Fees == nil {
					return ""
				}
				return formatAmount(*row.Fees)
			}},
			{Key: "duration_weeks", Label: "Weeks", Value: func(row clinic_dto.Enrollment) string {
				if row.DurationWeeks == nil {
					return ""
				}
				return strconv.Itoa(*row.DurationWeeks)
			}},
			{Key: "enrolled_on", Label: "Enrolled On", Value: func(row clinic_dto.Enrollment) string {
				return stringOrEmpty(row.EnrolledOn)
			}},
		},
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
