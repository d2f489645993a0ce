package service

import (
	"context"

	"github.com/shopflow/subbridge/internal/domain/entity"
	"github.com/shopflow/subbridge/internal/port/secondary"
)

// recordedCall captures one gateway invocation for assertions.
type recordedCall struct {
	method string
	path   string
	body   any
}

// scriptedReply is one queued gateway outcome.
type scriptedReply struct {
	resp *entity.UpstreamResponse
	err  error
}

// mockGateway is a test double for secondary.UpstreamGateway. Replies
// are consumed in order; calls beyond the script return an empty 200.
type mockGateway struct {
	calls   []recordedCall
	replies []scriptedReply
}

func (m *mockGateway) Call(_ context.Context, method, path string, body any) (*entity.UpstreamResponse, error) {
	m.calls = append(m.calls, recordedCall{method: method, path: path, body: body})

	if len(m.replies) == 0 {
		return &entity.UpstreamResponse{OK: true, Status: 200, Body: map[string]any{}}, nil
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply.resp, reply.err
}

func (m *mockGateway) Close() error { return nil }

func (m *mockGateway) reply(status int, body map[string]any) {
	m.replies = append(m.replies, scriptedReply{
		resp: &entity.UpstreamResponse{
			OK:     status >= 200 && status < 300,
			Status: status,
			Body:   body,
		},
	})
}

func (m *mockGateway) fail(err error) {
	m.replies = append(m.replies, scriptedReply{err: err})
}

// Compile-time interface assertion
var _ secondary.UpstreamGateway = (*mockGateway)(nil)

// timeoutError satisfies net.Error for timeout-classification tests.
type timeoutError struct{}

func (timeoutError) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }
