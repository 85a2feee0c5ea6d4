package service

import (
	"context"
	"fmt"
	"strings"

	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/onboarding"

	"gopkg.in/gomail.v2"
)

// Mail is a plain-text message
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers mail
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// SMTPOptions configures GomailMailer
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// GomailMailer sends mail through an SMTP relay
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer creates a mailer for the given relay
func NewGomailMailer(opts SMTPOptions) *GomailMailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password),
		from:   opts.From,
	}
}

// Send dials the relay and delivers one message
func (m *GomailMailer) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", mail.To, err)
	}
	return nil
}

// NoopMailer logs and drops mail when no relay is configured
type NoopMailer struct{}

// Send logs the subject at debug level
func (NoopMailer) Send(ctx context.Context, mail Mail) error {
	logger.WithContext(ctx).Component("mailer").
		WithField("to", mail.To).
		Debugf("SMTP disabled, dropping mail %q", mail.Subject)
	return nil
}

// NotificationService composes onboarding mail
type NotificationService struct {
	mailer Mailer
}

var _ NotifierInterface = (*NotificationService)(nil)

// NewNotificationService creates a new notification service
func NewNotificationService(mailer Mailer) *NotificationService {
	if mailer == nil {
		mailer = NoopMailer{}
	}
	return &NotificationService{mailer: mailer}
}

// NotifyWelcome greets the new hire with their first-day tasks
func (s *NotificationService) NotifyWelcome(ctx context.Context, hire *models.NewHire, plan *onboarding.Plan) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", hire.Name)
	fmt.Fprintf(&b, "Welcome aboard! Your onboarding as %s starts on %s.\n", plan.Role, plan.StartDate)

	if day1, ok := plan.Milestone(onboarding.MilestoneDay1); ok && len(day1.Tasks) > 0 {
		b.WriteString("\nOn your first day:\n")
		for _, task := range day1.Tasks {
			fmt.Fprintf(&b, "  - %s\n", task.Name)
		}
	}
	b.WriteString("\nSee you soon!\n")

	return s.mailer.Send(ctx, Mail{
		To:      hire.Email,
		Subject: "Welcome! Your onboarding plan is ready",
		Body:    b.String(),
	})
}

// NotifyTaskCompleted tells the manager that a task was finished
func (s *NotificationService) NotifyTaskCompleted(ctx context.Context, hire *models.NewHire, manager *models.User, task *onboarding.Task) error {
	body := fmt.Sprintf("Hi %s,\n\n%s completed the onboarding task %q (due %s).\n",
		manager.Name, hire.Name, task.Name, task.DueDate)

	return s.mailer.Send(ctx, Mail{
		To:      manager.Email,
		Subject: fmt.Sprintf("%s completed %q", hire.Name, task.Name),
		Body:    body,
	})
}
