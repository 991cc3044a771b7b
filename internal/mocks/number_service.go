package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mehidihasan1/twixdbot/internal/service"
	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

type NumberService struct {
	mock.Mock
}

func (m *NumberService) Search(ctx context.Context, api telco.API, query service.SearchQuery) service.Result {
	args := m.Called(ctx, api, query)
	return args.Get(0).(service.Result)
}

func (m *NumberService) Purchase(ctx context.Context, api telco.API, phoneNumber string) service.Result {
	args := m.Called(ctx, api, phoneNumber)
	return args.Get(0).(service.Result)
}

func (m *NumberService) ListOwned(ctx context.Context, api telco.API, query service.ListOwnedQuery) service.Result {
	args := m.Called(ctx, api, query)
	return args.Get(0).(service.Result)
}

func (m *NumberService) Release(ctx context.Context, api telco.API, phoneNumber string) service.Result {
	args := m.Called(ctx, api, phoneNumber)
	return args.Get(0).(service.Result)
}

func (m *NumberService) CheckSMS(ctx context.Context, api telco.API, query service.CheckSMSQuery) service.Result {
	args := m.Called(ctx, api, query)
	return args.Get(0).(service.Result)
}
