package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the outbound notification sink. Callers treat it as
// fire-and-forget: delivery failure is logged and never surfaces to the
// request that triggered it.
type EmailSender interface {
	SendVerificationEmail(email, username, token string) error
	SendNewsletterWelcome(email, username string) error
}

type EmailService struct {
	client     *resend.Client
	fromEmail  string
	audienceID string
	appURL     string
	appName    string
	isDev      bool
}

func NewEmailService(apiKey, fromEmail, audienceID, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		audienceID: audienceID,
		appURL:     appURL,
		appName:    appName,
		isDev:      isDev,
	}
}

func (s *EmailService) SendVerificationEmail(email, username, token string) error {
	verificationURL := fmt.Sprintf("%s/verify?token=%s", s.appURL, token)
	subject, body := verificationEmailTemplate(username, verificationURL, s.appName)

	if s.isDev || s.client == nil {
		// Log mode: the token is still usable via POST /api/verify
		slog.Info("email sent (log mode)", "type", "verification", "to", email, "subject", subject, "url", verificationURL)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "verification", "to", email)
	}
	return err
}

func (s *EmailService) SendNewsletterWelcome(email, username string) error {
	subject, body := newsletterWelcomeTemplate(username, s.appName)

	if s.isDev || s.client == nil {
		slog.Info("email sent (log mode)", "type", "newsletter_welcome", "to", email, "subject", subject)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err != nil {
		return err
	}
	slog.Info("email sent", "type", "newsletter_welcome", "to", email)

	if s.audienceID != "" {
		_, err = s.client.Contacts.Create(&resend.CreateContactRequest{
			Email:      email,
			AudienceId: s.audienceID,
		})
		if err != nil {
			// Duplicate contacts and API hiccups are not worth failing over
			slog.Warn("audience subscription failed", "error", err, "email", email)
		}
	}

	return nil
}
