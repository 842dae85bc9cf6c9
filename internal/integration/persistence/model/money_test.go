package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	tests := []struct {
		amount string
		cents  int64
	}{
		{"0", 0},
		{"0.1", 10},
		{"1000.50", 100050},
		{"10.005", 1001},
		{"-9.71", -971},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			cents := ToCents(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.cents, cents)
			assert.True(t, decimal.RequireFromString(tt.amount).Round(2).Equal(FromCents(cents)))
		})
	}
}
