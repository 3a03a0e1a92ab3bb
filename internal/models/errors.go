package models

import "net/http"

// ErrorKind enumerates the failures the pixel endpoint reports to callers.
type ErrorKind int

const (
	ErrMissingSource ErrorKind = iota + 1
	ErrInvalidSourceURL
	ErrFetchOrTransform
)

var errorKindStatus = map[ErrorKind]int{
	ErrMissingSource:    http.StatusBadRequest,
	ErrInvalidSourceURL: http.StatusBadRequest,
	ErrFetchOrTransform: http.StatusBadRequest,
}

var errorKindLabel = map[ErrorKind]string{
	ErrMissingSource:    "Bad Request",
	ErrInvalidSourceURL: "Bad Request",
	ErrFetchOrTransform: "Bad Request",
}

// Outcome is the counter name used for the kind in stats.
func (k ErrorKind) Outcome() string {
	switch k {
	case ErrMissingSource:
		return OutcomeMissingSource
	case ErrInvalidSourceURL:
		return OutcomeInvalidSourceURL
	case ErrFetchOrTransform:
		return OutcomeFetchOrTransform
	default:
		return "unknown"
	}
}

// HTTPError is an error that carries its own response status.
type HTTPError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func NewHTTPError(kind ErrorKind, message string) *HTTPError {
	status, ok := errorKindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return &HTTPError{
		Kind:       kind,
		StatusCode: status,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Label is the short human readable name of the status, e.g. "Bad Request".
func (e *HTTPError) Label() string {
	if label, ok := errorKindLabel[e.Kind]; ok {
		return label
	}
	return http.StatusText(e.StatusCode)
}

// Response builds the JSON body sent for the error.
func (e *HTTPError) Response() ErrorResponse {
	return ErrorResponse{
		StatusCode: e.StatusCode,
		Message:    e.Message,
		Error:      e.Label(),
	}
}

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}
