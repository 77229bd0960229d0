package model

import "errors"

// ErrorKind classifies a failed weather fetch
type ErrorKind string

const (
	EmptyInput              ErrorKind = "EmptyInput"
	RequestFailed           ErrorKind = "RequestFailed"
	TransportOrParseFailure ErrorKind = "TransportOrParseFailure"
)

// ErrTriggerDisabled is returned when a fetch is triggered while another one is in flight
var ErrTriggerDisabled = errors.New("weather fetch already in progress")

// WeatherError is the user-facing failure of a weather fetch.
// Message is what gets displayed; Err keeps the underlying cause, if any.
type WeatherError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *WeatherError) Error() string {
	return e.Message
}

func (e *WeatherError) Unwrap() error {
	return e.Err
}
