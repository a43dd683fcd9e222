package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ValidationRejected(field string) {
	m.Called(field)
}

func (m *MockRecorder) ExhibitionOp(op, outcome string) {
	m.Called(op, outcome)
}
