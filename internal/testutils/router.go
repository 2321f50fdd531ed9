package testutils

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/hctseng/formcraft-go/mail"
	"github.com/hctseng/formcraft-go/repositories"
	"github.com/hctseng/formcraft-go/routes"
	"github.com/hctseng/formcraft-go/services"
)

// CollectingSender records outgoing mail instead of delivering it. Safe for
// concurrent use; notification workers call Send from their own goroutines.
type CollectingSender struct {
	mu   sync.Mutex
	sent []SentMail
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

func (s *CollectingSender) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (s *CollectingSender) Sent() []SentMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentMail, len(s.sent))
	copy(out, s.sent)
	return out
}

var _ mail.Sender = (*CollectingSender)(nil)

// SetupRouter builds the full application router against the current db.DB.
func SetupRouter() (*gin.Engine, *services.Services, *CollectingSender) {
	gin.SetMode(gin.TestMode)
	sender := &CollectingSender{}
	svc := services.New(repositories.New(), sender)
	r := gin.New()
	routes.RegisterRoutes(r, svc)
	return r, svc, sender
}
