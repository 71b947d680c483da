package providers

import "errors"

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

type throttleError struct {
	message string
}

func (e *throttleError) Error() string {
	if e.message == "" {
		return "rate limited"
	}
	return "rate limited: " + e.message
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

// IsThrottle checks if an error is a rate-limit rejection.
func IsThrottle(err error) bool {
	var te *throttleError
	return errors.As(err, &te)
}
