package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"techtalks/config"
	"techtalks/internal/domain"
)

const charset = "UTF-8"

// sesAPI is the part of the SES client the mailer uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES; "noop" or unknown uses a no-op mailer.
func NewMailer(cfg config.EmailConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch cfg.Provider {
	case "ses":
		sesCfg := cfg.SES
		if sesCfg.Region == "" {
			return nil, fmt.Errorf("EMAIL_SES_REGION is required for the ses provider")
		}
		if sesCfg.AccessKeyID == "" || sesCfg.SecretAccessKey == "" {
			return nil, fmt.Errorf("EMAIL_SES_ACCESS_KEY_ID and EMAIL_SES_SECRET_ACCESS_KEY are required for the ses provider")
		}
		if sesCfg.InsecureSkipVerify {
			logger.Warn("[MAILER] TLS certificate verification is disabled for SES. Use only in development.")
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: sesCfg.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
		awsCfg := aws.Config{
			Region:     sesCfg.Region,
			HTTPClient: httpClient,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(sesCfg.AccessKeyID, sesCfg.SecretAccessKey, ""),
			),
		}
		return newSESMailer(ses.NewFromConfig(awsCfg), cfg.FromAddress, cfg.FromName, logger), nil
	case "noop":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("[MAILER] unknown email provider, using noop", "provider", cfg.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

type sesMailer struct {
	client      sesAPI
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func newSESMailer(client sesAPI, fromAddress, fromName string, logger *slog.Logger) *sesMailer {
	return &sesMailer{client: client, fromAddress: fromAddress, fromName: fromName, logger: logger}
}

func (s *sesMailer) source() string {
	if s.fromName == "" {
		return s.fromAddress
	}
	return fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(s.source()),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String(charset)},
			Body:    &types.Body{},
		},
	}
	if html != "" {
		input.Message.Body.Html = &types.Content{Data: aws.String(html), Charset: aws.String(charset)}
	}
	if text != "" {
		input.Message.Body.Text = &types.Content{Data: aws.String(text), Charset: aws.String(charset)}
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	s.logger.InfoContext(ctx, "[MAILER] email sent via SES", "message_id", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, html, text string) error {
	n.logger.InfoContext(ctx, "[MAILER] email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
