package telco_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

func TestIsAuthError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		auth bool
	}{
		{
			name: "unauthorized status",
			err:  &telco.Error{Status: 401, Code: 20003, Message: "Authentication Error"},
			auth: true,
		},
		{
			name: "auth code with odd status",
			err:  &telco.Error{Status: 403, Code: telco.CodeAuthenticationFailed, Message: "Authentication Error"},
			auth: true,
		},
		{
			name: "other provider fault",
			err:  &telco.Error{Status: 400, Code: 21421, Message: "Invalid number"},
			auth: false,
		},
		{
			name: "wrapped auth fault",
			err:  fmt.Errorf("probe: %w", &telco.Error{Status: 401, Code: 20003, Message: "Authentication Error"}),
			auth: true,
		},
		{name: "transport sentinel", err: telco.ErrTimeout, auth: false},
		{name: "plain error", err: errors.New("boom"), auth: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.auth, telco.IsAuthError(tc.err))
		})
	}
}

func TestAsRestError(t *testing.T) {
	restErr := &telco.Error{Status: 404, Code: 20404, Message: "Not found"}

	extracted, ok := telco.AsRestError(fmt.Errorf("lookup: %w", restErr))
	assert.True(t, ok)
	assert.Equal(t, restErr, extracted)

	_, ok = telco.AsRestError(telco.ErrNetworkError)
	assert.False(t, ok)
}
