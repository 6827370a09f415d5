package service

// AuthMetrics records authentication outcomes. Implementations must be safe for concurrent use.
type AuthMetrics interface {
	// RecordSignup counts one signup attempt; a nil error is a success.
	RecordSignup(err error)

	// RecordSignin counts one signin attempt; a nil error is a success.
	RecordSignin(err error)

	// RecordSessionsSwept adds n to the number of expired sessions removed.
	RecordSessionsSwept(n int64)
}
