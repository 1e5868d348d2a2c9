package logger

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, context ...LogContext) {
	m.Called(msg, context)
}

func (m *MockLogger) Info(msg string, context ...LogContext) {
	m.Called(msg, context)
}

func (m *MockLogger) Warn(msg string, context ...LogContext) {
	m.Called(msg, context)
}

func (m *MockLogger) Error(msg string, context ...LogContext) {
	m.Called(msg, context)
}

func (m *MockLogger) Panic(msg string, context ...LogContext) {
	m.Called(msg, context)
}

// NewMockLogger sets up and returns a new MockLogger with pre-defined expectations for each log level.
func NewMockLogger(t *testing.T) *MockLogger {
	mockLogger := new(MockLogger)

	mockLogger.On("Debug", mock.Anything, mock.Anything).Return(nil)
	mockLogger.On("Info", mock.Anything, mock.Anything).Return(nil)
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return(nil)
	mockLogger.On("Error", mock.Anything, mock.Anything).Return(nil)
	mockLogger.On("Panic", mock.Anything, mock.Anything).Return(nil)

	return mockLogger
}
