package handler

// ErrorResponse represents error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errorBody(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
