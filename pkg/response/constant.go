package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 1

	// InstantFormat is the wire format of absolute instants.
	InstantFormat = "2006-01-02T15:04:05Z07:00"
)
