package services

// ValidationError indicates missing or malformed input, an inactive reminder,
// or insufficient stock. The caller can correct the request and retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthorizationError indicates the caller lacks the required role or does not
// own the resource it is acting on.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NotFoundError indicates a referenced product or reminder does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
