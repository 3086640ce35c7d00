package sms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNotConfigured = errors.New("sms sender not configured")

type Sender interface {
	Send(ctx context.Context, to string, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &twilioSender{client: client, from: from}
}

func (s *twilioSender) Send(ctx context.Context, to string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	slog.Info("SMS sent", "to", to, "sid", sid)
	return nil
}

type logSender struct{}

// NewLogSender is used when Twilio credentials are absent. It never delivers,
// so callers leave the salary marked as unsent.
func NewLogSender() Sender {
	return logSender{}
}

func (logSender) Send(_ context.Context, to string, body string) error {
	slog.Warn("SMS not sent, Twilio is not configured", "to", to, "length", len(body))
	return ErrNotConfigured
}

// FormatPhoneNumber turns a stored mobile into E.164. Ten digits get the
// default country code and longer numbers are assumed to carry their own.
// Shorter input is returned as bare digits for the provider to reject.
func FormatPhoneNumber(mobile string, countryCode string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, mobile)

	switch {
	case len(digits) == 10:
		return "+" + strings.TrimPrefix(countryCode, "+") + digits
	case len(digits) > 10:
		return "+" + digits
	default:
		return digits
	}
}
