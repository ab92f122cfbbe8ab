package domain

import "fmt"

const placesErrorPrefix = "Google Places API Error: "

// PlacesError is returned for every failure talking to the places provider:
// an explicit status rejection, a transport failure or an unreadable reply.
type PlacesError struct {
	Reason string
	Err    error
}

var (
	ErrPlacesInvalidRequest = &PlacesError{Reason: "Invalid Request."}
	ErrPlacesQueryLimit     = &PlacesError{Reason: "API Query limit reached."}
	ErrPlacesRequestDenied  = &PlacesError{Reason: "Request denied."}
	ErrPlacesUnknown        = &PlacesError{Reason: "Unknown error with request."}
)

const reasonRequestFailed = "Request failed."

// NewPlacesRequestFailed wraps err as a generic request failure.
func NewPlacesRequestFailed(err error) *PlacesError {
	return &PlacesError{Reason: reasonRequestFailed, Err: err}
}

func (e *PlacesError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s%s %s", placesErrorPrefix, e.Reason, e.Err.Error())
	}
	return placesErrorPrefix + e.Reason
}

func (e *PlacesError) Unwrap() error {
	return e.Err
}

// LookupPlacesStatus returns the error for a rejecting provider status.
// ok is false for OK, ZERO_RESULTS and statuses it does not know.
func LookupPlacesStatus(status string) (err *PlacesError, ok bool) {
	switch status {
	case "INVALID_REQUEST":
		return ErrPlacesInvalidRequest, true
	case "OVER_QUERY_LIMIT":
		return ErrPlacesQueryLimit, true
	case "REQUEST_DENIED":
		return ErrPlacesRequestDenied, true
	case "UNKNOWN_ERROR":
		return ErrPlacesUnknown, true
	}
	return nil, false
}

// PlacesStatusError maps a provider status to its error. OK and ZERO_RESULTS
// map to nil; unrecognised statuses become request failures.
func PlacesStatusError(status string) error {
	if status == "OK" || status == "ZERO_RESULTS" {
		return nil
	}
	if err, ok := LookupPlacesStatus(status); ok {
		return err
	}
	return NewPlacesRequestFailed(fmt.Errorf("unexpected status %q", status))
}
