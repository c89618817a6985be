// Package dto provides shared data transfer objects for API responses.
package dto

// ErrorResponse represents a common API error response.
// Result carries the partial outcome when an operation failed midway.
type ErrorResponse struct {
	Error  string             `json:"error"`
	Result *OperationResponse `json:"result,omitempty"`
}
