package constvars

// Alert texts shown on the dashboard screens.
const (
	AlertPatientAdded     = "Patient added!"
	AlertPatientDeleted   = "Patient deleted!"
	AlertPatientNotFound  = "Patient not found."
	AlertPatientDelFailed = "Failed to delete patient"
	AlertDoctorAdded      = "Doctor added!"
	AlertInvoiceCreated   = "Invoice created!"
	AlertUpdated          = "Updated!"
	AlertDeleted          = "Deleted!"
	AlertRecordNotFound   = "Record not found."
	AlertRequestFailed    = "Request failed, please try again."
)

const (
	AlertLevelSuccess = "success"
	AlertLevelError   = "error"
)

const (
	GetProfileSuccessMessage    = "successfully loaded profile"
	ArchiveExportSuccessMessage = "successfully archived export"
	HealthSuccessMessage        = "ok"
)
