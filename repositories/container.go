package repositories

import "errors"

// Policy violations detected inside the admission transaction. They must
// originate here so concurrent admissions serialized on the form row report
// the violation the moment the lock is granted.
var (
	ErrRateLimited            = errors.New("rate limit exceeded")
	ErrSubmissionLimitReached = errors.New("submission limit reached")
	ErrAlreadyFinalized       = errors.New("submission already finalized")
)

type Repos struct {
	User            UserRepo
	Form            FormRepo
	Question        QuestionRepo
	Submission      SubmissionRepo
	RateLimit       RateLimitRepo
	NotificationLog NotificationLogRepo
}

func New() *Repos {
	return &Repos{
		User:            &DBUserRepo{},
		Form:            &DBFormRepo{},
		Question:        &DBQuestionRepo{},
		Submission:      &DBSubmissionRepo{},
		RateLimit:       &DBRateLimitRepo{},
		NotificationLog: &DBNotificationLogRepo{},
	}
}
