package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingResourceKey      = "resource"
	LoggingResourceIDKey    = "resource_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingSubjectIDKey     = "subject_id"
	LoggingGenerationKey    = "generation"
	LoggingCountKey         = "count"
	LoggingTopicKey         = "topic"
	LoggingScreenKey        = "screen"
	LoggingFormatKey        = "format"
	LoggingModeKey          = "mode"
	LoggingResponseLenKey   = "response_length"
	LoggingExportObjectKey  = "object_name"
	LoggingOperationKey     = "operation"
	LoggingEventKey         = "event"
	LoggingBackendDetailKey = "backend_detail"
)
