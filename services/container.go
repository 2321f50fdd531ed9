package services

import (
	"github.com/hctseng/formcraft-go/mail"
	"github.com/hctseng/formcraft-go/repositories"
)

type Services struct {
	User         *UserService
	Form         *FormService
	Question     *QuestionService
	Submission   *SubmissionService
	Notification *NotificationService
}

func New(repos *repositories.Repos, sender mail.Sender) *Services {
	notification := NewNotificationService(sender, repos)
	forms := NewFormService(repos)
	return &Services{
		User:         NewUserService(repos),
		Form:         forms,
		Question:     NewQuestionService(repos, forms),
		Submission:   NewSubmissionService(repos, notification),
		Notification: notification,
	}
}
