package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short body passes through",
			body: "Rs.5.00 debited",
			want: "Rs.5.00 debited",
		},
		{
			name: "surrounding whitespace is trimmed",
			body: "  Rs.5.00 debited \n",
			want: "Rs.5.00 debited",
		},
		{
			name: "long body is truncated at the limit",
			body: strings.Repeat("a", 200),
			want: strings.Repeat("a", ExcerptLimit),
		},
		{
			name: "truncation respects rune boundaries",
			body: strings.Repeat("₹", 200),
			want: strings.Repeat("₹", ExcerptLimit),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.body))
		})
	}
}

func TestCandidateTransaction_HasAmount(t *testing.T) {
	assert.True(t, (&CandidateTransaction{Amount: "₹5.00"}).HasAmount())
	assert.False(t, (&CandidateTransaction{Amount: AmountNone}).HasAmount())
	assert.False(t, (&CandidateTransaction{}).HasAmount())
}

func TestNewManualSourceID(t *testing.T) {
	now := time.Now()

	first := NewManualSourceID(now)
	second := NewManualSourceID(now)

	assert.True(t, strings.HasPrefix(first, "manual-"))
	assert.NotEqual(t, first, second, "IDs are unique even at the same instant")
}
