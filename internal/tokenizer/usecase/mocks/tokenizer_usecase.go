// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTokenizerUseCase is a mock implementation of TokenizerUseCase for testing.
type MockTokenizerUseCase struct {
	mock.Mock
}

// Tokenize mocks the Tokenize method of TokenizerUseCase.
func (m *MockTokenizerUseCase) Tokenize(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// Detokenize mocks the Detokenize method of TokenizerUseCase.
func (m *MockTokenizerUseCase) Detokenize(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

// Available mocks the Available method of TokenizerUseCase.
func (m *MockTokenizerUseCase) Available() error {
	args := m.Called()
	return args.Error(0)
}
