// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

import (
	reflect "reflect"

	common "github.com/Fantom-foundation/Facto/common"
	gomock "go.uber.org/mock/gomock"
)

// MockHashFunction is a mock of HashFunction interface.
type MockHashFunction struct {
	ctrl     *gomock.Controller
	recorder *MockHashFunctionMockRecorder
}

// MockHashFunctionMockRecorder is the mock recorder for MockHashFunction.
type MockHashFunctionMockRecorder struct {
	mock *MockHashFunction
}

// NewMockHashFunction creates a new mock instance.
func NewMockHashFunction(ctrl *gomock.Controller) *MockHashFunction {
	mock := &MockHashFunction{ctrl: ctrl}
	mock.recorder = &MockHashFunctionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHashFunction) EXPECT() *MockHashFunctionMockRecorder {
	return m.recorder
}

// Hash mocks base method.
func (m *MockHashFunction) Hash(left, right []byte) (common.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hash", left, right)
	ret0, _ := ret[0].(common.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Hash indicates an expected call of Hash.
func (mr *MockHashFunctionMockRecorder) Hash(left, right any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hash", reflect.TypeOf((*MockHashFunction)(nil).Hash), left, right)
}
