// Package upstreammock provides a hand-written, mockgen-style mock of
// upstream.Client for use in v1/batcher's tests. It scripts upstream
// latency, partial failures, and shape mismatches deterministically without
// touching the network.
package upstreammock

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/upstream"
)

// MockClient is a mock of upstream.Client.
type MockClient struct {
	ctrl     *gomock.Controller
	recorder *MockClientMockRecorder
}

// MockClientMockRecorder is the mock recorder for MockClient.
type MockClientMockRecorder struct {
	mock *MockClient
}

// NewMockClient creates a new mock instance.
func NewMockClient(ctrl *gomock.Controller) *MockClient {
	mock := &MockClient{ctrl: ctrl}
	mock.recorder = &MockClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClient) EXPECT() *MockClientMockRecorder {
	return m.recorder
}

// Embed mocks upstream.Client's Embed method.
func (m *MockClient) Embed(ctx context.Context, flatInputs []string) ([][]float64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Embed", ctx, flatInputs)
	ret0, _ := ret[0].([][]float64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Embed indicates an expected call of Embed.
func (mr *MockClientMockRecorder) Embed(ctx, flatInputs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Embed", reflect.TypeOf((*MockClient)(nil).Embed), ctx, flatInputs)
}

var _ upstream.Client = (*MockClient)(nil)
