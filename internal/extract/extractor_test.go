package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/pattern"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	lib, err := pattern.NewDefaultLibrary()
	require.NoError(t, err)
	return New(lib)
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		wantAmount       string
		wantCounterparty string
		wantDirection    model.Direction
		bankOverride     bool
	}{
		{
			name:             "hdfc sent template",
			body:             "Sent Rs.5.00\nFrom HDFC Bank A/C x7805\nTo APPLE MEDIA SERVICES\nOn 09/12/24",
			bankOverride:     true,
			wantDirection:    model.DirectionExpense,
			wantAmount:       "₹5.00",
			wantCounterparty: "APPLE MEDIA SERVICES",
		},
		{
			name:             "credit with payer",
			body:             "Your account is credited with INR 1500.00 from RAVI KUMAR",
			wantDirection:    model.DirectionIncome,
			wantAmount:       "₹1500.00",
			wantCounterparty: "RAVI KUMAR",
		},
		{
			name:          "debit wins when both keyword families appear",
			body:          "Rs.300 debited; your account will be credited on reversal",
			wantDirection: model.DirectionExpense,
			wantAmount:    "₹300",
		},
		{
			name:          "amount-of phrase takes priority over other digit runs",
			body:          "An amount of INR 500.00 was debited from A/c 889900 on 01/02/25",
			wantDirection: model.DirectionExpense,
			wantAmount:    "₹500.00",
		},
		{
			name:          "sent without a currency token yields the sentinel",
			body:          "Sent 25 to John via UPI",
			wantDirection: model.DirectionExpense,
			wantAmount:    model.AmountNone,
		},
		{
			name:          "extraction failure yields the sentinel",
			body:          "Your account is credited",
			wantDirection: model.DirectionIncome,
			wantAmount:    model.AmountNone,
		},
		{
			name:          "account number masquerading as amount is rejected",
			body:          "A/c x7805 debited Rs.7805",
			wantDirection: model.DirectionExpense,
			wantAmount:    model.AmountNone,
		},
		{
			name:          "disambiguation finds the real amount",
			body:          "A/c x7805 debited Rs.7805 fee Rs.120.50 applied",
			wantDirection: model.DirectionExpense,
			wantAmount:    "₹120.50",
		},
		{
			name:             "counterparty trailing punctuation is trimmed",
			body:             "INR 250 credited by Sharma Stores.",
			wantDirection:    model.DirectionIncome,
			wantAmount:       "₹250",
			wantCounterparty: "Sharma Stores",
		},
		{
			name:             "payee account suffix is stripped",
			body:             "Rs.90 debited, paid to Ramesh A/c XX4411 via UPI",
			wantDirection:    model.DirectionExpense,
			wantAmount:       "₹90",
			wantCounterparty: "Ramesh",
		},
		{
			name:          "transaction notice without direction keywords defaults to expense",
			body:          "Transaction of 4567 completed on your card",
			wantDirection: model.DirectionExpense,
			wantAmount:    "₹4567",
		},
	}

	extractor := newExtractor(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.body, tt.bankOverride)
			assert.Equal(t, tt.wantDirection, got.Direction, "direction")
			assert.Equal(t, tt.wantAmount, got.Amount, "amount")
			assert.Equal(t, tt.wantCounterparty, got.Counterparty, "counterparty")
		})
	}
}

func TestExtractor_SentinelCarriesNoRuleOrCounterparty(t *testing.T) {
	extractor := newExtractor(t)

	got := extractor.Extract("A/c x7805 debited Rs.7805", false)
	assert.Equal(t, model.AmountNone, got.Amount)
	assert.Empty(t, got.Rule)
	assert.Empty(t, got.Counterparty)
}
