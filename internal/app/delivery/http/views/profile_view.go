package views

import (
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"fmt"
	"strconv"
)

// ProfileView draws the profile page regions onto a Page.
type ProfileView struct {
	Page *Page
}

func NewProfileView(page *Page) *ProfileView {
	return &ProfileView{Page: page}
}

func (v *ProfileView) SetLoading(loading bool) {
	v.Page.Show(constvars.RegionBasicLoading, loading)
	v.Page.Show(constvars.RegionBasicDetails, !loading)
	v.Page.Show(constvars.RegionBillsLoading, loading)
	v.Page.Show(constvars.RegionBillsTableContainer, !loading)
	v.Page.Show(constvars.RegionJoinLoading, loading)
	v.Page.Show(constvars.RegionJoinTableContainer, !loading)
}

// RenderPatientBasic shows the serial in place of the database id when one
// was computed.
func (v *ProfileView) RenderPatientBasic(patient *clinic_dto.Patient, serial *int) {
	if patient == nil {
		patient = &clinic_dto.Patient{}
	}

	id := strconv.FormatInt(patient.ID, 10)
	if serial != nil {
		id = strconv.Itoa(*serial)
	}
	name := patient.FullName()
	if name == "" {
		name = constvars.PlaceholderEmDash
	}
	phone := patient.Phone
	if phone == "" {
		phone = constvars.PlaceholderEmDash
	}

	v.Page.SetText(constvars.RegionPatientID, id)
	v.Page.SetText(constvars.RegionPatientName, name)
	v.Page.SetText(constvars.RegionPatientAge, intOr(patient.Age, constvars.PlaceholderEmDash))
	v.Page.SetText(constvars.RegionPatientGender, stringOr(patient.Gender, constvars.PlaceholderEmDash))
	v.Page.SetText(constvars.RegionPatientPhone, phone)
}

func (v *ProfileView) RenderBillCount(count int) {
	v.Page.SetText(constvars.RegionTotalBills, fmt.Sprintf(constvars.ProfileTotalFormat, count))
}

func (v *ProfileView) RenderBillsTable(bills []clinic_dto.Invoice, directory clinic_dto.DoctorDirectory) {
	RenderTable(v.Page, constvars.RegionBillsBody, bills, BillRow(directory), constvars.RegionNoBills)
}

func (v *ProfileView) RenderStudentBasic(student *clinic_dto.Student) {
	if student == nil {
		student = &clinic_dto.Student{}
	}
	v.Page.SetText(constvars.RegionStudentID, strconv.FormatInt(student.ID, 10))
	v.Page.SetText(constvars.RegionStudentName, stringOr(student.Name, constvars.PlaceholderEmDash))
	v.Page.SetText(constvars.RegionStudentEmail, stringOr(student.Email, constvars.PlaceholderEmDash))
	v.Page.SetText(constvars.RegionStudentYear, intOr(student.Year, constvars.PlaceholderEmDash))
}

func (v *ProfileView) RenderEnrollmentCount(count int) {
	v.Page.SetText(constvars.RegionTotalEnrollments, fmt.Sprintf(constvars.ProfileTotalFormat, count))
}

func (v *ProfileView) RenderEnrollmentsTable(rows []clinic_dto.Enrollment) {
	RenderTable(v.Page, constvars.RegionJoinBody, rows, EnrollmentRow, constvars.RegionNoEnrollments)
}

// RenderError is the uniform failed-load state: loading cleared, counts
// zeroed and both tables empty.
func (v *ProfileView) RenderError() {
	v.SetLoading(false)
	v.RenderEnrollmentCount(0)
	v.RenderBillCount(0)
	v.RenderBillsTable(nil, nil)
	v.RenderEnrollmentsTable(nil)
}
