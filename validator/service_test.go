package validator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alovak/cardnum/internal/luhn"
	"github.com/alovak/cardnum/validator"
)

// fixedSource hands out a predetermined digit sequence so generation is
// deterministic in tests.
type fixedSource struct {
	digits string
}

func (f fixedSource) Digits(n int) (string, error) {
	if n > len(f.digits) {
		return "", fmt.Errorf("fixed source exhausted: want %d digits, have %d", n, len(f.digits))
	}
	return f.digits[:n], nil
}

func TestValidate(t *testing.T) {
	engine := validator.NewService(nil, nil)

	t.Run("valid number decomposes by position", func(t *testing.T) {
		result, err := engine.Validate("4539148803436467")
		require.NoError(t, err)

		require.True(t, result.Valid)
		require.Equal(t, "4", result.MajorIndustry)
		require.Equal(t, "Banking/Financial", result.Industry)
		require.Equal(t, "453914", result.Issuer)
		require.Equal(t, "880343646", result.Personal)
		require.Equal(t, "7", result.CheckDigit)
	})

	t.Run("failed checksum keeps the decomposition", func(t *testing.T) {
		result, err := engine.Validate("4539148803436468")
		require.NoError(t, err)

		require.False(t, result.Valid)
		require.Equal(t, "4", result.MajorIndustry)
		require.Equal(t, "453914", result.Issuer)
		require.Equal(t, "880343646", result.Personal)
		require.Equal(t, "8", result.CheckDigit)
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, input := range []string{"", "12a4", " 1234", "4539 1488", "4539-1488", "+1234", "1"} {
			_, err := engine.Validate(input)
			require.ErrorIs(t, err, validator.ErrInvalidInput, "input %q", input)
		}
	})

	t.Run("two-digit boundary uses the general algorithm", func(t *testing.T) {
		result, err := engine.Validate("18")
		require.NoError(t, err)
		require.True(t, result.Valid)
		require.Equal(t, "1", result.Issuer)
		require.Empty(t, result.Personal)
		require.Equal(t, "8", result.CheckDigit)

		result, err = engine.Validate("11")
		require.NoError(t, err)
		require.False(t, result.Valid)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := engine.Validate("4539148803436467")
		require.NoError(t, err)
		second, err := engine.Validate("4539148803436467")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("deterministic with a fixed source", func(t *testing.T) {
		engine := validator.NewService(fixedSource{digits: "53914880343646"}, nil)

		result, err := engine.Generate(4, 16)
		require.NoError(t, err)

		require.True(t, result.Valid)
		require.Equal(t, "4539148803436467", result.Number)
		require.Equal(t, "4", result.MajorIndustry)
		require.Equal(t, "453914", result.Issuer)
		require.Equal(t, "880343646", result.Personal)
		require.Equal(t, "7", result.CheckDigit)
	})

	t.Run("generated numbers always validate", func(t *testing.T) {
		engine := validator.NewService(nil, nil)

		for mii := 0; mii <= 9; mii++ {
			for _, length := range []int{2, 7, 14, 15, 16, 19} {
				result, err := engine.Generate(mii, length)
				require.NoError(t, err)

				require.True(t, result.Valid)
				require.Len(t, result.Number, length)
				require.Equal(t, string(rune('0'+mii)), result.MajorIndustry)

				check, err := engine.Validate(result.Number)
				require.NoError(t, err)
				require.True(t, check.Valid, "generated %s does not validate", result.Number)
			}
		}
	})

	t.Run("zero length selects the default", func(t *testing.T) {
		engine := validator.NewService(nil, validator.DefaultConfig())

		result, err := engine.Generate(5, 0)
		require.NoError(t, err)
		require.Len(t, result.Number, validator.DefaultLength)
		require.True(t, strings.HasPrefix(result.Number, "5"))
	})

	t.Run("bad parameters", func(t *testing.T) {
		engine := validator.NewService(nil, nil)

		for _, mii := range []int{-1, 10, 11, 100} {
			_, err := engine.Generate(mii, 16)
			require.ErrorIs(t, err, validator.ErrInvalidInput, "mii %d", mii)
		}
		for _, length := range []int{-1, 1, 20, 100} {
			_, err := engine.Generate(5, length)
			require.ErrorIs(t, err, validator.ErrInvalidInput, "length %d", length)
		}
	})

	t.Run("two calls may differ but both validate", func(t *testing.T) {
		engine := validator.NewService(luhn.CryptoSource{}, nil)

		first, err := engine.Generate(5, 16)
		require.NoError(t, err)
		second, err := engine.Generate(5, 16)
		require.NoError(t, err)

		require.True(t, first.Valid)
		require.True(t, second.Valid)
		require.Equal(t, "5", first.MajorIndustry)
		require.Equal(t, "5", second.MajorIndustry)
	})
}
