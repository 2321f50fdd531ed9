package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/hctseng/formcraft-go/config"
	"github.com/hctseng/formcraft-go/mail"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
)

type mailJob struct {
	form       *models.Form
	submission *models.FormSubmission
	to         string
}

// NotificationService delivers submission notifications off the request path.
// A bounded queue feeds a fixed pool of workers; every attempt, success or
// failure, is recorded as a FormNotificationLog row. Delivery problems never
// surface to the submitter.
type NotificationService struct {
	Sender mail.Sender
	Repos  *repositories.Repos

	jobs chan mailJob
	wg   sync.WaitGroup
	once sync.Once
}

func NewNotificationService(sender mail.Sender, repos *repositories.Repos) *NotificationService {
	s := &NotificationService{
		Sender: sender,
		Repos:  repos,
		jobs:   make(chan mailJob, config.MailQueueSize),
	}
	for i := 0; i < config.MailWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// NotifySubmission enqueues one delivery per configured recipient. The
// enqueue never blocks: when the queue is full the job is dropped and logged
// as a failed delivery.
func (s *NotificationService) NotifySubmission(form *models.Form, sub *models.FormSubmission) {
	if !form.EnableEmailNotifications {
		return
	}
	for _, to := range form.RecipientEmails() {
		job := mailJob{form: form, submission: sub, to: to}
		select {
		case s.jobs <- job:
		default:
			s.record(job, false, "notification queue full, delivery dropped")
		}
	}
}

func (s *NotificationService) worker() {
	defer s.wg.Done()
	for job := range s.jobs {
		s.deliver(job)
	}
}

func (s *NotificationService) deliver(job mailJob) {
	subject := "New submission for " + job.form.Title
	body := fmt.Sprintf(
		"Form %q received a new submission (%s) from %s.",
		job.form.Title, job.submission.ID, job.submission.SubmittedAt.Format("2006-01-02 15:04:05"),
	)
	if err := s.Sender.Send(job.to, subject, body); err != nil {
		s.record(job, false, err.Error())
		return
	}
	s.record(job, true, "")
}

func (s *NotificationService) record(job mailJob, success bool, message string) {
	entry := models.FormNotificationLog{
		FormID:       job.form.ID,
		SubmissionID: job.submission.ID,
		ToEmail:      job.to,
		Success:      success,
		Message:      message,
	}
	if err := s.Repos.NotificationLog.Create(&entry); err != nil {
		log.Printf("notification log write failed: %v", err)
	}
}

// Close stops accepting new jobs and waits for in-flight deliveries.
func (s *NotificationService) Close() {
	s.once.Do(func() {
		close(s.jobs)
	})
	s.wg.Wait()
}
