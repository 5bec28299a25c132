package commands_test

import (
	"context"
	"io"
	"log/slog"

	"airspeed/internal/core/application/usecases/commands"
	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockSwallowRepository struct {
	mock.Mock
}

func (m *MockSwallowRepository) Add(ctx context.Context, aggregate *swallow.Swallow) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSwallowRepository) Update(ctx context.Context, aggregate *swallow.Swallow) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSwallowRepository) Get(ctx context.Context, id kernel.UUID) (*swallow.Swallow, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*swallow.Swallow)
	return s, args.Error(1)
}

type MockSwallowUoW struct {
	mock.Mock
}

func (m *MockSwallowUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSwallowUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSwallowUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSwallowUoW) SwallowRepository() ports.SwallowRepository {
	args := m.Called()
	return args.Get(0).(ports.SwallowRepository)
}

type MockSwallowUoWFactory struct {
	mock.Mock
}

func (m *MockSwallowUoWFactory) Create() commands.SwallowUoW {
	args := m.Called()
	return args.Get(0).(commands.SwallowUoW)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.SwallowEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
