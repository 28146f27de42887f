package mocks

import (
	"context"

	"eksapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResourceService) Get(ctx context.Context, id service.ID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockResourceService) Create(ctx context.Context, value string) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *MockResourceService) Update(ctx context.Context, id service.ID, value string) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *MockResourceService) Delete(ctx context.Context, id service.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
