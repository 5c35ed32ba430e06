package handler

import "net/http"

// ErrorDetail is the machine-readable part of an error response.
// Field names the offending input field for validation errors, so clients
// can attach the message to the right form control.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// notFound writes a 404 response. The caller supplies the human-readable
// message (e.g. "vehicle not found") because the handler is the layer that
// knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{Code: "not_found", Message: message},
	})
}

// validationError writes a 422 response scoped to a single input field.
// Date and parameter rejections are always local and recoverable; they never
// block other fields.
func validationError(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message, Field: field},
	})
}

// requestError writes a 422 response for a request rejected before reaching
// the booking engine (e.g. missing or malformed body).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// catalogUnavailable writes a 503 response. The client should retry;
// selection state on the server is unaffected.
func catalogUnavailable(w http.ResponseWriter) {
	writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
		Error: ErrorDetail{Code: "catalog_unavailable", Message: "catalog is temporarily unavailable"},
	})
}
