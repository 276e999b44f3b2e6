package mocks

import (
	"context"

	"demoapps/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Root(ctx context.Context) model.Message {
	args := m.Called(ctx)
	return args.Get(0).(model.Message)
}

func (m *MockStatusService) Health(ctx context.Context) model.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(model.HealthStatus)
}
