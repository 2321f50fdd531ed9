package response

import "github.com/hctseng/formcraft-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
}

// FieldErrorResponse carries per-field validation failures for one object.
type FieldErrorResponse struct {
	Errors models.FieldErrors `json:"errors"`
}

// AnswerErrorResponse carries validation failures for a whole submission,
// keyed by question id.
type AnswerErrorResponse struct {
	Errors models.AnswerErrors `json:"errors"`
}

type ResetResponse struct {
	Message string `json:"message"`
	Cleared int64  `json:"cleared"`
}
