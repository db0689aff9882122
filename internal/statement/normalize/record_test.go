package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espressobank/extrato/internal/statement"
	"github.com/espressobank/extrato/internal/statement/normalize"
)

func TestMapRecord_BrazilianAmountString(t *testing.T) {
	tx, ok := normalize.MapRecord(normalize.Record{
		"id":     "t1",
		"date":   "2025-08-03",
		"amount": "R$ 1.500,00",
		"type":   "entrada",
	})
	require.True(t, ok)

	assert.Equal(t, "t1", tx.ID)
	assert.Equal(t, "2025-08-03", tx.Date)
	assert.InDelta(t, 1500.0, tx.Amount, 0.001)
	assert.Equal(t, statement.DirectionCredit, tx.Direction)
	assert.Equal(t, "Transação", tx.Description)
	assert.Equal(t, statement.StatusCompleted, tx.Status)
}

func TestMapRecord_RejectsUndatedRecords(t *testing.T) {
	_, ok := normalize.MapRecord(normalize.Record{
		"id":          "t2",
		"amount":      42.0,
		"description": "sem data",
	})
	assert.False(t, ok)
}

func TestMapRecord_AmountIsAlwaysMagnitude(t *testing.T) {
	type testCase struct {
		name          string
		amount        any
		wantAmount    float64
		wantDirection statement.Direction
	}

	tests := []testCase{
		{
			name:          "NegativeFormattedString",
			amount:        "-1.234,56",
			wantAmount:    1234.56,
			wantDirection: statement.DirectionDebit,
		},
		{
			name:          "NegativeNumber",
			amount:        -250.0,
			wantAmount:    250,
			wantDirection: statement.DirectionDebit,
		},
		{
			name:          "PositiveNumber",
			amount:        99.9,
			wantAmount:    99.9,
			wantDirection: statement.DirectionCredit,
		},
		{
			name:          "UnparseableString",
			amount:        "n/a",
			wantAmount:    0,
			wantDirection: statement.DirectionCredit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, ok := normalize.MapRecord(normalize.Record{
				"date":   "2025-08-03",
				"amount": tt.amount,
			})
			require.True(t, ok)

			assert.GreaterOrEqual(t, tx.Amount, 0.0)
			assert.InDelta(t, tt.wantAmount, tx.Amount, 0.001)
			assert.Equal(t, tt.wantDirection, tx.Direction)
		})
	}
}

func TestMapRecord_AliasPrecedence(t *testing.T) {
	// First present alias wins: amount over value, date over created_at,
	// description over title.
	tx, ok := normalize.MapRecord(normalize.Record{
		"amount":      100.0,
		"value":       999.0,
		"date":        "2025-08-03",
		"created_at":  "2020-01-01",
		"description": "principal",
		"title":       "secundário",
	})
	require.True(t, ok)

	assert.InDelta(t, 100.0, tx.Amount, 0.001)
	assert.Equal(t, "2025-08-03", tx.Date)
	assert.Equal(t, "principal", tx.Description)
}

func TestMapRecord_AliasEquivalence(t *testing.T) {
	// The same logical record produces the same transaction regardless of
	// which alias set is populated.
	viaPrimary, ok := normalize.MapRecord(normalize.Record{
		"id":          "t9",
		"date":        "2025-08-03",
		"amount":      120.0,
		"description": "assinatura",
	})
	require.True(t, ok)

	viaAliases, ok := normalize.MapRecord(normalize.Record{
		"id":         "t9",
		"created_at": "2025-08-03",
		"value":      120.0,
		"title":      "assinatura",
	})
	require.True(t, ok)

	assert.Equal(t, viaPrimary, viaAliases)
}

func TestMapRecord_AttributesWinOnCollision(t *testing.T) {
	tx, ok := normalize.MapRecord(normalize.Record{
		"date":   "2025-08-03",
		"amount": 10.0,
		"attributes": map[string]any{
			"amount":      "850,00",
			"description": "de attributes",
		},
	})
	require.True(t, ok)

	assert.InDelta(t, 850.0, tx.Amount, 0.001)
	assert.Equal(t, "de attributes", tx.Description)
}

func TestMapRecord_DirectionInference(t *testing.T) {
	type testCase struct {
		name   string
		record normalize.Record
		want   statement.Direction
	}

	tests := []testCase{
		{
			name:   "CreditKeyword",
			record: normalize.Record{"date": "2025-08-03", "amount": 10.0, "type": "entrada"},
			want:   statement.DirectionCredit,
		},
		{
			name:   "DebitKeyword",
			record: normalize.Record{"date": "2025-08-03", "amount": 10.0, "type": "saída"},
			want:   statement.DirectionDebit,
		},
		{
			name: "DirectionFieldBeatsType",
			record: normalize.Record{
				"date": "2025-08-03", "amount": 10.0,
				"direction": "debit", "type": "entrada",
			},
			want: statement.DirectionDebit,
		},
		{
			// "pagamento recebido" matches both patterns; credit is
			// checked first.
			name:   "BothPatternsClassifyAsCredit",
			record: normalize.Record{"date": "2025-08-03", "amount": 10.0, "type": "pagamento recebido"},
			want:   statement.DirectionCredit,
		},
		{
			name:   "NoKeywordFallsBackToSign",
			record: normalize.Record{"date": "2025-08-03", "amount": -10.0, "type": "outro"},
			want:   statement.DirectionDebit,
		},
		{
			name:   "NoFieldAtAllFallsBackToSign",
			record: normalize.Record{"date": "2025-08-03", "amount": 10.0},
			want:   statement.DirectionCredit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, ok := normalize.MapRecord(tt.record)
			require.True(t, ok)
			assert.Equal(t, tt.want, tx.Direction)
		})
	}
}

func TestMapRecord_SynthesizedID(t *testing.T) {
	tx, ok := normalize.MapRecord(normalize.Record{
		"date":        "2025-08-03",
		"description": "Aluguel",
		"amount":      1200.0,
	})
	require.True(t, ok)

	assert.Equal(t, "2025-08-03-Aluguel", tx.ID)
}

func TestMapRecord_NumericID(t *testing.T) {
	tx, ok := normalize.MapRecord(normalize.Record{
		"id":     42.0,
		"date":   "2025-08-03",
		"amount": 5.0,
	})
	require.True(t, ok)

	assert.Equal(t, "42", tx.ID)
}

func TestMapRecord_OptionalFields(t *testing.T) {
	tx, ok := normalize.MapRecord(normalize.Record{
		"date":          "2025-08-03",
		"amount":        5.0,
		"category_name": "Serviços",
		"username":      "maria",
		"product_type":  "suppliers",
		"product_name":  "Fornecedores",
		"status":        "pending",
	})
	require.True(t, ok)

	assert.Equal(t, "Serviços", tx.Category)
	assert.Equal(t, "maria", tx.Responsible)
	assert.Equal(t, statement.ProductSuppliers, tx.ProductType)
	assert.Equal(t, "Fornecedores", tx.ProductName)
	assert.Equal(t, statement.StatusPending, tx.Status)
}

func TestMapRecord_UnknownProductAndStatus(t *testing.T) {
	tx, ok := normalize.MapRecord(normalize.Record{
		"date":         "2025-08-03",
		"amount":       5.0,
		"product_type": "crypto_vault",
		"status":       "exploded",
	})
	require.True(t, ok)

	assert.Empty(t, tx.ProductType)
	assert.Equal(t, statement.StatusCompleted, tx.Status)
}
