package service

import (
	"plateperfect/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock implementation of Recorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordMenu(operation string, count int, average float64) {
	m.Called(operation, count, average)
}

func (m *MockRecorder) RecordValidationFailure(code string) {
	m.Called(code)
}

func (m *MockRecorder) RecordTransition(from, to string) {
	m.Called(from, to)
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mock.Mock
}

func (m *MockIDGenerator) NewID() string {
	return m.Called().String(0)
}

// MockPublisher is a mock implementation of stream.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(summary model.MenuSummary) {
	m.Called(summary)
}
