package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

type Resolver struct {
	mock.Mock
}

func (m *Resolver) Resolve(ctx context.Context, userID int64) (telco.API, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(telco.API), args.Error(1)
}

func (m *Resolver) Configure(ctx context.Context, userID int64, accountSID, authToken string) error {
	args := m.Called(ctx, userID, accountSID, authToken)
	return args.Error(0)
}
