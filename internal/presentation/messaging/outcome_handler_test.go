package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/kafka"
)

type mockCompleter struct {
	executeFunc func(ctx context.Context, req dto.CompleteSubmissionRequest) (dto.SubmissionResponse, error)
	calls       []dto.CompleteSubmissionRequest
}

func (m *mockCompleter) Execute(ctx context.Context, req dto.CompleteSubmissionRequest) (dto.SubmissionResponse, error) {
	m.calls = append(m.calls, req)
	if m.executeFunc != nil {
		return m.executeFunc(ctx, req)
	}
	return dto.SubmissionResponse{Handle: req.Handle, Status: req.Outcome}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutcomeHandler_Completes(t *testing.T) {
	completer := &mockCompleter{}
	h := NewOutcomeHandler(completer, testLogger())

	err := h.Handle(context.Background(), kafka.Message{
		Key:   []byte("h-1"),
		Value: []byte(`{"handle":"h-1","outcome":"FAILED","reason":"declined"}`),
	})
	require.NoError(t, err)
	require.Len(t, completer.calls, 1)
	assert.Equal(t, dto.CompleteSubmissionRequest{Handle: "h-1", Outcome: "FAILED", Reason: "declined"}, completer.calls[0])
}

func TestOutcomeHandler_HandleFromKey(t *testing.T) {
	completer := &mockCompleter{}
	h := NewOutcomeHandler(completer, testLogger())

	require.NoError(t, h.Handle(context.Background(), kafka.Message{
		Key:   []byte("h-2"),
		Value: []byte(`{"outcome":"CONFIRMED"}`),
	}))
	require.Len(t, completer.calls, 1)
	assert.Equal(t, "h-2", completer.calls[0].Handle)
}

func TestOutcomeHandler_DropsUnrecoverable(t *testing.T) {
	tests := []struct {
		name  string
		value string
		err   error
		calls int
	}{
		{"malformed json", `{"outcome":`, nil, 0},
		{"unknown handle", `{"handle":"x","outcome":"CONFIRMED"}`, valueobject.ErrSubmissionNotFound, 1},
		{"already completed", `{"handle":"x","outcome":"CONFIRMED"}`, fmt.Errorf("confirm: %w", valueobject.ErrInvalidStatusTransition), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mockCompleter{
				executeFunc: func(context.Context, dto.CompleteSubmissionRequest) (dto.SubmissionResponse, error) {
					return dto.SubmissionResponse{}, tt.err
				},
			}
			h := NewOutcomeHandler(completer, testLogger())

			assert.NoError(t, h.Handle(context.Background(), kafka.Message{Value: []byte(tt.value)}))
			assert.Len(t, completer.calls, tt.calls)
		})
	}
}

func TestOutcomeHandler_ReturnsInternalErrors(t *testing.T) {
	storeDown := errors.New("redis: connection refused")
	completer := &mockCompleter{
		executeFunc: func(context.Context, dto.CompleteSubmissionRequest) (dto.SubmissionResponse, error) {
			return dto.SubmissionResponse{}, storeDown
		},
	}
	h := NewOutcomeHandler(completer, testLogger())

	err := h.Handle(context.Background(), kafka.Message{Value: []byte(`{"handle":"h-3","outcome":"CONFIRMED"}`)})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeDown)
}
