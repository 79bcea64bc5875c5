package constvars

// Profile page regions.
const (
	RegionBasicLoading        = "basicLoading"
	RegionBasicDetails        = "basicDetails"
	RegionBillsLoading        = "billsLoading"
	RegionBillsTableContainer = "billsTableContainer"
	RegionJoinLoading         = "joinLoading"
	RegionJoinTableContainer  = "joinTableContainer"

	RegionPatientID     = "patientId"
	RegionPatientName   = "patientName"
	RegionPatientAge    = "patientAge"
	RegionPatientGender = "patientGender"
	RegionPatientPhone  = "patientPhone"
	RegionTotalBills    = "totalBills"
	RegionBillsBody     = "billsTableBody"
	RegionNoBills       = "noBills"

	RegionStudentID        = "studentId"
	RegionStudentName      = "studentName"
	RegionStudentEmail     = "studentEmail"
	RegionStudentYear      = "studentYear"
	RegionTotalEnrollments = "totalEnrollments"
	RegionJoinBody         = "joinTableBody"
	RegionNoEnrollments    = "noEnrollments"
)

// List screen regions.
const (
	RegionPatientsBody = "patientsTableBody"
	RegionNoPatients   = "noPatients"
	RegionDoctorsBody  = "doctorsTableBody"
	RegionNoDoctors    = "noDoctors"
	RegionBillingBody  = "billingTableBody"
	RegionNoBilling    = "noBilling"
	RegionProfilesBody = "profilesTableBody"
	RegionNoProfiles   = "noProfiles"
)

const (
	PlaceholderDash    = "-"
	PlaceholderEmDash  = "—"
	ProfileTotalFormat = "Total: %d"
)
