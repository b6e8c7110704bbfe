package stub

import "net/http"

// StatusError is a domain failure with the HTTP status it maps to.
type StatusError struct {
	Code    int
	Message string
	Detail  string
}

func (e *StatusError) Error() string { return e.Message }

func badRequest(msg string) error { return &StatusError{Code: http.StatusBadRequest, Message: msg} }

func notFound(msg string) error { return &StatusError{Code: http.StatusNotFound, Message: msg} }

var (
	errUserNotFound  = notFound("User not found")
	errTopicNotFound = notFound("Topic not found")
	errQuizNotFound  = notFound("Quiz not found")
)
