package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeUnsupportedMedia, http.StatusUnsupportedMediaType},
		{CodeTooManyRequest, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := NewBusiness("msg", tc.code)
		var gerr *Error
		require.ErrorAs(t, err, &gerr)
		require.Equal(t, tc.want, gerr.StatusCode())
	}
}

func TestNewServerWrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	err := NewServer(cause)

	require.ErrorIs(t, err, cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, "Internal server error", gerr.Msg())
	require.Equal(t, CodeInternal, gerr.Code())
}

func TestNewInvalidInputFields(t *testing.T) {
	t.Parallel()

	err := NewInvalidInput(nil, "channel", "must be EMAIL, SMS, TELEGRAM or FILE")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	require.Equal(t, map[string]string{"channel": "must be EMAIL, SMS, TELEGRAM or FILE"}, gerr.Fields())
}
