package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techtalks/config"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "ekskom@online.ntnu.no", "Tech Talks", discardLogger())

	require.NoError(t, m.Send(context.Background(), "ada@example.com", "Hello", "<p>hi</p>", "hi"))
	require.NotNil(t, client.input)
	assert.Equal(t, "Tech Talks <ekskom@online.ntnu.no>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"ada@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hello", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestSESMailer_Send_TextOnlyWithoutName(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "ekskom@online.ntnu.no", "", discardLogger())

	require.NoError(t, m.Send(context.Background(), "ada@example.com", "Hello", "", "hi"))
	assert.Equal(t, "ekskom@online.ntnu.no", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)
	assert.NotNil(t, client.input.Message.Body.Text)
}

func TestSESMailer_Send_Error(t *testing.T) {
	m := newSESMailer(&fakeSES{err: errors.New("throttled")}, "a@b.c", "", discardLogger())
	assert.Error(t, m.Send(context.Background(), "ada@example.com", "s", "h", "t"))
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.EmailConfig
		wantSES bool
		wantErr bool
	}{
		{name: "noop", cfg: config.EmailConfig{Provider: "noop"}},
		{name: "unknown falls back to noop", cfg: config.EmailConfig{Provider: "smtp"}},
		{name: "ses", cfg: config.EmailConfig{Provider: "ses", FromAddress: "a@b.c", SES: config.SESConfig{Region: "eu-north-1", AccessKeyID: "id", SecretAccessKey: "secret"}}, wantSES: true},
		{name: "ses without region", cfg: config.EmailConfig{Provider: "ses"}, wantErr: true},
		{name: "ses without access key", cfg: config.EmailConfig{Provider: "ses", SES: config.SESConfig{Region: "eu-north-1", SecretAccessKey: "secret"}}, wantErr: true},
		{name: "ses without secret", cfg: config.EmailConfig{Provider: "ses", SES: config.SESConfig{Region: "eu-north-1", AccessKeyID: "id"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.cfg, discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isSES := m.(*sesMailer)
			assert.Equal(t, tt.wantSES, isSES)
			require.NoError(t, (&noopMailer{logger: discardLogger()}).Send(context.Background(), "x@y.z", "s", "h", "t"))
		})
	}
}
