package mocks

import (
	"context"

	"cmsapi/internal/vector"

	"github.com/stretchr/testify/mock"
)

type MockIndex struct {
	mock.Mock
}

func (m *MockIndex) Upsert(ctx context.Context, entry vector.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockIndex) Query(ctx context.Context, values []float32, topK int) ([]vector.Match, error) {
	args := m.Called(ctx, values, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vector.Match), args.Error(1)
}

func (m *MockIndex) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIndex) Close() error {
	args := m.Called()
	return args.Error(0)
}
