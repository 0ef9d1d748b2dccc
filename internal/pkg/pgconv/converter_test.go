//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"parking-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	testCases := []struct {
		name    string
		in      pgtype.Numeric
		want    string
		wantErr bool
	}{
		{name: "two decimal places", in: pgtype.Numeric{Int: big.NewInt(6000), Exp: -2, Valid: true}, want: "60"},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(4), Exp: 1, Valid: true}, want: "40"},
		{name: "null is zero", in: pgtype.Numeric{Valid: false}, want: "0"},
		{name: "NaN rejected", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pgconv.DecimalFromNumeric(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestNumericFromDecimal_RoundTrip(t *testing.T) {
	in := decimal.RequireFromString("123.45")
	out, err := pgconv.DecimalFromNumeric(pgconv.NumericFromDecimal(in))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}
