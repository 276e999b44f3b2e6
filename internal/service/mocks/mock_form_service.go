package mocks

import (
	"context"

	"demoapps/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Page(ctx context.Context, name string) model.FormPage {
	args := m.Called(ctx, name)
	return args.Get(0).(model.FormPage)
}
