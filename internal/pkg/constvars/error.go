package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"gt":       "must be greater than %s",
	"gte":      "must be at least %s",
	"oneof":    "must be one of %s",
}

var TagsWithParams = map[string]bool{
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientResourceNotFound              = "the requested record does not exist"
	ErrClientBackendUnavailable            = "the clinic backend is not reachable"
	ErrClientExportArchiveDisabled         = "export archiving is not configured"
	ErrClientTooManyArchives               = "too many exports archived, try again later"
	ErrClientProfileSwitched               = "another profile was opened meanwhile, open this one again"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed = "URL param %s is not a valid id"
	ErrDevSendHTTPRequest            = "failed to send HTTP request to %s"
	ErrDevDecodeResponse             = "failed to decode %s response"
	ErrDevBackendStatus              = "backend answered %d for %s"
	ErrDevResourceNotFound           = "%s not found"
	ErrDevProfileNotFound            = "no patient or student for profile"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevUnsupportedExportFormat    = "unsupported export format %q"
	ErrDevBuildExport                = "failed to build %s export"
	ErrDevNoActiveProfile            = "no profile loaded for export"
	ErrDevProfileSwitched            = "profile %d requested but %d is loaded"
	ErrDevMinioCreateObject          = "failed to create object in bucket %s"
	ErrDevMinioPresignObject         = "failed to presign object in bucket %s"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRenderTemplate             = "failed to render template %s"
	ErrDevArchiveRateLimited         = "archive limit reached for %s, retry after %d seconds"
)
