// Package mocks provides gomock-based doubles for the http3 package's
// transport contract (http3.Connection, http3.OpenStreams,
// http3.Stream, http3.SendStream, http3.ReceiveStream). It is written
// by hand in the shape mockgen would produce, since no toolchain runs
// as part of building this module.
package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/saitolume/h3/http3"
)

// MockConnection mocks http3.Connection.
type MockConnection struct {
	ctrl     *gomock.Controller
	recorder *MockConnectionMockRecorder
}

// MockConnectionMockRecorder is the mock recorder for MockConnection.
type MockConnectionMockRecorder struct {
	mock *MockConnection
}

// NewMockConnection creates a new mock instance.
func NewMockConnection(ctrl *gomock.Controller) *MockConnection {
	mock := &MockConnection{ctrl: ctrl}
	mock.recorder = &MockConnectionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConnection) EXPECT() *MockConnectionMockRecorder {
	return m.recorder
}

func (m *MockConnection) OpenStream(ctx context.Context) (http3.Stream, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OpenStream", ctx)
	ret0, _ := ret[0].(http3.Stream)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConnectionMockRecorder) OpenStream(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenStream", reflect.TypeOf((*MockConnection)(nil).OpenStream), ctx)
}

func (m *MockConnection) OpenUniStream(ctx context.Context) (http3.SendStream, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OpenUniStream", ctx)
	ret0, _ := ret[0].(http3.SendStream)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConnectionMockRecorder) OpenUniStream(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenUniStream", reflect.TypeOf((*MockConnection)(nil).OpenUniStream), ctx)
}

func (m *MockConnection) AcceptStream(ctx context.Context) (http3.Stream, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcceptStream", ctx)
	ret0, _ := ret[0].(http3.Stream)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConnectionMockRecorder) AcceptStream(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcceptStream", reflect.TypeOf((*MockConnection)(nil).AcceptStream), ctx)
}

func (m *MockConnection) AcceptUniStream(ctx context.Context) (http3.ReceiveStream, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcceptUniStream", ctx)
	ret0, _ := ret[0].(http3.ReceiveStream)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockConnectionMockRecorder) AcceptUniStream(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcceptUniStream", reflect.TypeOf((*MockConnection)(nil).AcceptUniStream), ctx)
}

func (m *MockConnection) CloseWithError(code http3.Code, reason string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CloseWithError", code, reason)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockConnectionMockRecorder) CloseWithError(code, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CloseWithError", reflect.TypeOf((*MockConnection)(nil).CloseWithError), code, reason)
}

// MockStream mocks http3.Stream.
type MockStream struct {
	ctrl     *gomock.Controller
	recorder *MockStreamMockRecorder
}

type MockStreamMockRecorder struct {
	mock *MockStream
}

func NewMockStream(ctrl *gomock.Controller) *MockStream {
	mock := &MockStream{ctrl: ctrl}
	mock.recorder = &MockStreamMockRecorder{mock}
	return mock
}

func (m *MockStream) EXPECT() *MockStreamMockRecorder {
	return m.recorder
}

func (m *MockStream) Read(p []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", p)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockStreamMockRecorder) Read(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockStream)(nil).Read), p)
}

func (m *MockStream) Write(p []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", p)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockStreamMockRecorder) Write(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockStream)(nil).Write), p)
}

func (m *MockStream) Finish() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Finish")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockStreamMockRecorder) Finish() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Finish", reflect.TypeOf((*MockStream)(nil).Finish))
}

func (m *MockStream) StreamID() int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StreamID")
	ret0, _ := ret[0].(int64)
	return ret0
}

func (mr *MockStreamMockRecorder) StreamID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StreamID", reflect.TypeOf((*MockStream)(nil).StreamID))
}

func (m *MockStream) CancelRead(code http3.Code) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CancelRead", code)
}

func (mr *MockStreamMockRecorder) CancelRead(code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelRead", reflect.TypeOf((*MockStream)(nil).CancelRead), code)
}

// MockSendStream mocks http3.SendStream.
type MockSendStream struct {
	ctrl     *gomock.Controller
	recorder *MockSendStreamMockRecorder
}

type MockSendStreamMockRecorder struct {
	mock *MockSendStream
}

func NewMockSendStream(ctrl *gomock.Controller) *MockSendStream {
	mock := &MockSendStream{ctrl: ctrl}
	mock.recorder = &MockSendStreamMockRecorder{mock}
	return mock
}

func (m *MockSendStream) EXPECT() *MockSendStreamMockRecorder {
	return m.recorder
}

func (m *MockSendStream) Write(p []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", p)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSendStreamMockRecorder) Write(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockSendStream)(nil).Write), p)
}

func (m *MockSendStream) Finish() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Finish")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockSendStreamMockRecorder) Finish() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Finish", reflect.TypeOf((*MockSendStream)(nil).Finish))
}

// MockReceiveStream mocks http3.ReceiveStream.
type MockReceiveStream struct {
	ctrl     *gomock.Controller
	recorder *MockReceiveStreamMockRecorder
}

type MockReceiveStreamMockRecorder struct {
	mock *MockReceiveStream
}

func NewMockReceiveStream(ctrl *gomock.Controller) *MockReceiveStream {
	mock := &MockReceiveStream{ctrl: ctrl}
	mock.recorder = &MockReceiveStreamMockRecorder{mock}
	return mock
}

func (m *MockReceiveStream) EXPECT() *MockReceiveStreamMockRecorder {
	return m.recorder
}

func (m *MockReceiveStream) Read(p []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", p)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReceiveStreamMockRecorder) Read(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockReceiveStream)(nil).Read), p)
}

func (m *MockReceiveStream) StreamID() int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StreamID")
	ret0, _ := ret[0].(int64)
	return ret0
}

func (mr *MockReceiveStreamMockRecorder) StreamID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StreamID", reflect.TypeOf((*MockReceiveStream)(nil).StreamID))
}

func (m *MockReceiveStream) CancelRead(code http3.Code) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CancelRead", code)
}

func (mr *MockReceiveStreamMockRecorder) CancelRead(code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelRead", reflect.TypeOf((*MockReceiveStream)(nil).CancelRead), code)
}

var (
	_ http3.Connection    = (*MockConnection)(nil)
	_ http3.Stream        = (*MockStream)(nil)
	_ http3.SendStream    = (*MockSendStream)(nil)
	_ http3.ReceiveStream = (*MockReceiveStream)(nil)
)
