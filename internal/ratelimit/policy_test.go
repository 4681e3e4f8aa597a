package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in         string
		want       Policy
		wantPeriod time.Duration
		wantString string
	}{
		{"6/minute", Policy{Limit: 6, Multiplier: 1, Unit: "minute"}, time.Minute, "6 per 1 minute"},
		{"10/second", Policy{Limit: 10, Multiplier: 1, Unit: "second"}, time.Second, "10 per 1 second"},
		{"100/2 hours", Policy{Limit: 100, Multiplier: 2, Unit: "hour"}, 2 * time.Hour, "100 per 2 hour"},
		{"5 per day", Policy{Limit: 5, Multiplier: 1, Unit: "day"}, 24 * time.Hour, "5 per 1 day"},
		{" 3 PER 15 Minutes ", Policy{Limit: 3, Multiplier: 15, Unit: "minute"}, 15 * time.Minute, "3 per 15 minute"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPeriod, got.Period())
			assert.Equal(t, tt.wantString, got.String())
		})
	}
}

func TestParsePolicy_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"six/minute",
		"0/minute",
		"-1/minute",
		"6/fortnight",
		"6/0 minutes",
		"6/1 2 minutes",
		"6 minute",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePolicy(in)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		})
	}
}
