package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
	"github.com/hctseng/formcraft-go/response"
	"github.com/hctseng/formcraft-go/services"
	"gorm.io/gorm"
)

// writeError maps a service error onto its HTTP status. Validation errors
// keep their field structure; everything else is a flat message.
func writeError(c *gin.Context, err error) {
	var fieldErrs models.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, response.FieldErrorResponse{Errors: fieldErrs})
		return
	}
	var answerErrs models.AnswerErrors
	if errors.As(err, &answerErrs) {
		c.JSON(http.StatusBadRequest, response.AnswerErrorResponse{Errors: answerErrs})
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Invalid access code"})
	case errors.Is(err, repositories.ErrSubmissionLimitReached):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "This form is no longer accepting submissions"})
	case errors.Is(err, services.ErrFormUnavailable):
		c.JSON(http.StatusGone, response.ErrorResponse{Error: "This form is not accepting submissions"})
	case errors.Is(err, repositories.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, response.ErrorResponse{Error: "Too many submissions, try again later"})
	case errors.Is(err, repositories.ErrAlreadyFinalized):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Submission is already finalized"})
	case errors.Is(err, services.ErrOrderMismatch):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Submitted ids do not match the form's questions"})
	case errors.Is(err, services.ErrNotProtected):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Form is not password protected"})
	case errors.Is(err, services.ErrDraftsDisabled):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Partial saves are disabled for this form"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
