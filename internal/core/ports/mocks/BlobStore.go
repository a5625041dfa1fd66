package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// BlobStore is a testify mock of ports.BlobStore.
type BlobStore struct {
	mock.Mock
}

func (_m *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	ret := _m.Called(ctx, key)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	ret := _m.Called(ctx, key, value)

	if rf, ok := ret.Get(0).(func(context.Context, string, []byte) error); ok {
		return rf(ctx, key, value)
	}
	return ret.Error(0)
}

func (_m *BlobStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, key)
	}
	return ret.Error(0)
}

// NewBlobStore registers the mock with t and asserts expectations on cleanup.
func NewBlobStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlobStore {
	m := &BlobStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
