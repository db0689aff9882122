package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/espressobank/extrato/internal/money"
	"github.com/espressobank/extrato/internal/statement"
)

func TestSignedAmount(t *testing.T) {
	credit := statement.Transaction{Amount: 150.5, Direction: statement.DirectionCredit}
	debit := statement.Transaction{Amount: 150.5, Direction: statement.DirectionDebit}

	assert.InDelta(t, 150.5, money.SignedAmount(credit), 0.001)
	assert.InDelta(t, -150.5, money.SignedAmount(debit), 0.001)

	// |signed| always equals the stored magnitude.
	assert.InDelta(t, credit.Amount, math.Abs(money.SignedAmount(credit)), 0.001)
	assert.InDelta(t, debit.Amount, math.Abs(money.SignedAmount(debit)), 0.001)
}

func TestSignedAmount_NormalizesStoredSign(t *testing.T) {
	// Amount is a magnitude by invariant, but a stray negative must not
	// double-negate.
	tx := statement.Transaction{Amount: -99, Direction: statement.DirectionDebit}
	assert.InDelta(t, -99.0, money.SignedAmount(tx), 0.001)
}

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		fallback float64
		want     float64
	}

	tests := []testCase{
		{name: "CurrencyPrefixAndThousands", input: "R$ 1.500,00", want: 1500},
		{name: "NegativeFormatted", input: "-1.234,56", want: -1234.56},
		{name: "PlainInteger", input: "42", want: 42},
		{name: "CommaDecimal", input: "10,99", want: 10.99},
		{name: "Garbage", input: "n/a", fallback: 7, want: 7},
		{name: "Empty", input: "", fallback: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, money.ParseAmount(tt.input, tt.fallback), 0.001)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	got := money.FormatCurrency(1500, "BRL")

	assert.Contains(t, got, "R$")
	assert.Contains(t, got, "1.500,00")
}

func TestFormatCurrency_UnknownCodeFallsBackToBRL(t *testing.T) {
	got := money.FormatCurrency(10, "???")
	assert.Contains(t, got, "R$")
}

func TestFormatCurrency_DefaultCode(t *testing.T) {
	assert.Equal(t, money.FormatCurrency(10, "BRL"), money.FormatCurrency(10, ""))
}
