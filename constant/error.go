package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrSessionNotFound
	ErrInvalidPhase
	ErrSubmissionFailed
	ErrFileTooLarge
	ErrNotAnImage
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrSessionNotFound:  "checkout session not found",
	ErrInvalidPhase:     "operation not allowed in current phase",
	ErrSubmissionFailed: "Failed to submit order. Please try again.",
	ErrFileTooLarge:     "File size must be less than 10MB",
	ErrNotAnImage:       "File must be an image",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusBadRequest,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrSessionNotFound:  http.StatusNotFound,
	ErrInvalidPhase:     http.StatusBadRequest,
	ErrSubmissionFailed: http.StatusBadGateway,
	ErrFileTooLarge:     http.StatusBadRequest,
	ErrNotAnImage:       http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrSessionNotFound:  "0004",
	ErrInvalidPhase:     "0005",
	ErrSubmissionFailed: "0006",
	ErrFileTooLarge:     "0007",
	ErrNotAnImage:       "0008",
}
