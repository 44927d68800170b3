package response

// Standard messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong. Please try again later."
)

// Error codes
const (
	InternalServerErrorCode = 500
)

// Formats used by the Date and DateTime marshal types.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
