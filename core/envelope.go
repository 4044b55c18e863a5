package core

// APIError is the error payload of a failed API call.
type APIError struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// Envelope wraps every API response. When OK is false Error is expected to be
// set; when OK is true Result carries the operation-specific payload.
type Envelope[T any] struct {
	OK     bool      `json:"ok"`
	Result *T        `json:"result,omitempty"`
	Error  *APIError `json:"error,omitempty"`
}

func (e Envelope[T]) failed() bool {
	return !e.OK || e.Result == nil
}
