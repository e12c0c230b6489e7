package dto

// ErrorResponse is the standardized error body for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
