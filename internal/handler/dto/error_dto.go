package dto

import "net/http"

// ErrorResponse - единый формат ошибки API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "could not process resource",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

// NewErrorResponse создает тело ошибки для HTTP-статуса с фиксированным сообщением
func NewErrorResponse(status int) ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
