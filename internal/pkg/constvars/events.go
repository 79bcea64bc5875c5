package constvars

const (
	EventPatientsChanged = "patients:changed"
	EventInvoicesChanged = "invoices:changed"
)

const (
	RedisEventChannel   = "clinic-dashboard:events"
	AMQPEventsExchange  = "clinic.dashboard.events"
	RedisUIStateKeyBase = "clinic-dashboard:ui"
)

// Business events written to the audit log.
const (
	BusinessEventPatientDeleted = "patient_deleted"
	BusinessEventExportArchived = "export_archived"
)
