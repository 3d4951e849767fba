package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitsLength(t *testing.T) {
	t.Parallel()

	gen := New()

	for _, length := range []int{1, 4, 6, 10} {
		code, err := gen.Digits(length)
		require.NoError(t, err)
		require.Len(t, code, length)
	}
}

func TestDigitsCharset(t *testing.T) {
	t.Parallel()

	gen := New()

	code, err := gen.Digits(64)
	require.NoError(t, err)
	for _, r := range code {
		require.GreaterOrEqual(t, r, '0')
		require.LessOrEqual(t, r, '9')
	}
}

func TestDigitsInvalidLength(t *testing.T) {
	t.Parallel()

	gen := New()

	_, err := gen.Digits(0)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = gen.Digits(-3)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestDigitsNotConstant(t *testing.T) {
	t.Parallel()

	gen := New()

	a, err := gen.Digits(32)
	require.NoError(t, err)
	b, err := gen.Digits(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
