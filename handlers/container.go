package handlers

import (
	"github.com/hctseng/formcraft-go/services"
)

type Handlers struct {
	Auth       *AuthHandler
	Form       *FormHandler
	Question   *QuestionHandler
	Submission *SubmissionHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.User),
		Form:       NewFormHandler(svc.Form),
		Question:   NewQuestionHandler(svc.Question),
		Submission: NewSubmissionHandler(svc.Submission),
	}
}
