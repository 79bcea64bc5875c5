package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNC_DSH_"
)

// Backend resource paths, relative to the configured base URL.
const (
	ResourcePatients    = "/patients"
	ResourceDoctors     = "/doctors"
	ResourceInvoices    = "/invoices"
	ResourceStudents    = "/students"
	ResourceEnrollments = "enrollments"
)

// Screens own one slot each in the UI state store.
const (
	ScreenPatients = "patients"
	ScreenDoctors  = "doctors"
	ScreenInvoices = "invoices"
	ScreenProfiles = "profiles"
	ScreenProfile  = "profile"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
