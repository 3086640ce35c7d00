package sms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		mobile  string
		country string
		want    string
	}{
		{"9876543210", "91", "+919876543210"},
		{"98765 43210", "91", "+919876543210"},
		{"9876543210", "+1", "+19876543210"},
		{"919876543210", "91", "+919876543210"},
		{"+44 20 7946 0958", "91", "+442079460958"},
		{"98765", "91", "98765"},
		{"(022) 555-01", "91", "02255501"},
		{"", "91", ""},
	}

	for _, tt := range tests {
		t.Run(tt.mobile, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhoneNumber(tt.mobile, tt.country))
		})
	}
}

func TestLogSenderReportsNotConfigured(t *testing.T) {
	err := NewLogSender().Send(context.Background(), "+919876543210", "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
