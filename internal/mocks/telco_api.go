package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

type TelcoAPI struct {
	mock.Mock
}

func (m *TelcoAPI) FetchAccount(ctx context.Context) (telco.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).(telco.Account), args.Error(1)
}

func (m *TelcoAPI) SearchAvailable(ctx context.Context, country string, filters telco.SearchFilters) ([]telco.AvailableNumber, error) {
	args := m.Called(ctx, country, filters)
	return args.Get(0).([]telco.AvailableNumber), args.Error(1)
}

func (m *TelcoAPI) CreateNumber(ctx context.Context, phoneNumber string) (telco.OwnedNumber, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Get(0).(telco.OwnedNumber), args.Error(1)
}

func (m *TelcoAPI) ListNumbers(ctx context.Context, filter telco.ListFilter) ([]telco.OwnedNumber, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]telco.OwnedNumber), args.Error(1)
}

func (m *TelcoAPI) DeleteNumber(ctx context.Context, numberSID string) error {
	args := m.Called(ctx, numberSID)
	return args.Error(0)
}

func (m *TelcoAPI) ListMessages(ctx context.Context, to string, limit int) ([]telco.Message, error) {
	args := m.Called(ctx, to, limit)
	return args.Get(0).([]telco.Message), args.Error(1)
}
