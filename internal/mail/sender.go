// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

// Package mail delivers verification and password-reset codes to users. The
// production implementation sends through Mailjet; every other mode logs the
// message so local development needs no mail credentials.
package mail

import (
	"context"
	"fmt"

	"github.com/mailjet/mailjet-apiv3-go"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
)

//go:generate mockgen -source=sender.go -destination=../mock/mail_sender_mock.go -package=mock

// Sender delivers a plain-text email to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewSender selects the sender implementation from cfg.Mode: "production"
// sends real email through Mailjet, anything else logs the message instead.
func NewSender(cfg config.Mail, log *logger.Logger) Sender {
	if cfg.Mode == "production" {
		return &mailjetSender{
			client:    mailjet.NewMailjetClient(cfg.APIKey, cfg.APISecret),
			fromEmail: cfg.FromEmail,
			fromName:  cfg.FromName,
			logger:    log,
		}
	}

	return &logSender{logger: log}
}

type mailjetSender struct {
	client    *mailjet.Client
	fromEmail string
	fromName  string
	logger    *logger.Logger
}

// Send implements [Sender] via the Mailjet v3.1 send API.
func (s *mailjetSender) Send(ctx context.Context, to, subject, body string) error {
	messagesInfo := []mailjet.InfoMessagesV31{
		{
			From: &mailjet.RecipientV31{
				Email: s.fromEmail,
				Name:  s.fromName,
			},
			To: &mailjet.RecipientsV31{
				mailjet.RecipientV31{
					Email: to,
				},
			},
			Subject:  subject,
			TextPart: body,
		},
	}

	messages := mailjet.MessagesV31{Info: messagesInfo}
	if _, err := s.client.SendMailV31(&messages); err != nil {
		s.logger.Err(err).Str("to", to).Str("subject", subject).Msg("failed to send email")
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

// logSender writes the message to the log instead of delivering it. Used in
// every non-production mode.
type logSender struct {
	logger *logger.Logger
}

// Send implements [Sender] by logging the message.
func (s *logSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("mail sender in non-production mode, logging instead of sending")

	return nil
}
