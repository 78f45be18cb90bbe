package lookup

// UsageError reports a coordinate pair that does not name one latitude
// and one longitude.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func NewUsageError(message string) *UsageError {
	return &UsageError{Message: message}
}
