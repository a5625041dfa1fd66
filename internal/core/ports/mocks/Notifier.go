package mocks

import (
	"context"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// Notifier is a testify mock of ports.Notifier.
type Notifier struct {
	mock.Mock
}

func (_m *Notifier) Notify(ctx context.Context, n domain.Notification) {
	_m.Called(ctx, n)
}

// NewNotifier registers the mock with t and asserts expectations on cleanup.
func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
