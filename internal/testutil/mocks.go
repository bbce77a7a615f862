package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/befoot1242/wordbook/internal/domain"
)

// MockGateway is a testify mock of the gateway bridge used by the capture
// form and the management list.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Save(ctx context.Context, draft domain.Draft) (string, error) {
	args := m.Called(ctx, draft)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) List(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockGateway) Update(ctx context.Context, id string, upd domain.Update) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGateway) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
