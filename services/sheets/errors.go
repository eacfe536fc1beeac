package sheets

import "fmt"

// ConfigMissingError signals that the required data-source credentials are
// absent; no network call was attempted.
type ConfigMissingError struct {
	Detail string
}

func (e ConfigMissingError) Error() string {
	return "sheets configuration missing: " + e.Detail
}

// HTTPStatusError signals a non-2xx response from the Sheets API.
type HTTPStatusError struct {
	Status int
}

func (e HTTPStatusError) Error() string {
	return fmt.Sprintf("sheets API returned HTTP %d", e.Status)
}

// MalformedPayloadError signals a response body that could not be used.
type MalformedPayloadError struct {
	Reason string
}

func (e MalformedPayloadError) Error() string {
	return "malformed sheets payload: " + e.Reason
}
