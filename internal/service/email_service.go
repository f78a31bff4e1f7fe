package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"notification-service/internal/config"
	"notification-service/internal/domain"
)

type EmailService interface {
	Send(ctx context.Context, input domain.SendEmailInput) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

// Send validates and delivers one email. Attachments arrive base64 encoded
// and are decoded before handing them to Resend.
func (s *emailService) Send(ctx context.Context, input domain.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    input.Sender,
		To:      input.Receiver,
		Subject: input.Subject,
	}
	if input.MsgType == domain.EmailHTML {
		params.Html = input.Message
	} else {
		params.Text = input.Message
	}

	for _, attachment := range input.Attachments {
		content, err := attachment.Decode()
		if err != nil {
			return err
		}
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename: attachment.Name,
			Content:  content,
		})
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
