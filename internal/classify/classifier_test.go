package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paisawatch/paisawatch/internal/model"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		sender        string
		transactional bool
		bankOverride  bool
	}{
		{
			name:          "debited keyword",
			body:          "Your A/c XX1234 is debited with Rs.500.00",
			transactional: true,
		},
		{
			name:          "credited keyword",
			body:          "Your account is credited with INR 1500.00 from RAVI KUMAR",
			transactional: true,
		},
		{
			name:          "transaction keyword",
			body:          "Transaction of 4567 completed on your card",
			transactional: true,
		},
		{
			name:          "sent keyword without bank template",
			body:          "You have sent money to a friend",
			transactional: true,
		},
		{
			name:          "hdfc template with bank name in body",
			body:          "Sent Rs.5.00\nFrom HDFC Bank A/C x7805\nTo APPLE MEDIA SERVICES\nOn 09/12/24",
			transactional: true,
			bankOverride:  true,
		},
		{
			name:          "hdfc template with bank name only in sender",
			body:          "Sent Rs.120.00 to a merchant",
			sender:        "VM-HDFCBK",
			transactional: true,
			bankOverride:  true,
		},
		{
			name:          "plain conversation",
			body:          "Hello, how are you?",
			transactional: false,
		},
		{
			name:          "otp style message",
			body:          "Your one time password is 482910. Do not share it.",
			transactional: false,
		},
		{
			name:          "keywords are matched case-insensitively",
			body:          "Your account was DEBITED with Rs.99",
			transactional: true,
		},
		{
			name:          "sent and rs without hdfc is no override",
			body:          "Sent Rs.45.00 to the canteen",
			sender:        "VM-OTHER",
			transactional: true,
			bankOverride:  false,
		},
	}

	classifier := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(model.RawMessage{Body: tt.body, Sender: tt.sender})
			assert.Equal(t, tt.transactional, result.Transactional, "transactional")
			assert.Equal(t, tt.bankOverride, result.BankOverride, "bank override")
		})
	}
}
