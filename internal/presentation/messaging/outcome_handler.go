// Package messaging consumes submission outcomes published by the downstream
// loan processor and applies them to pending submissions.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/kafka"
)

// Completer applies a submission outcome.
type Completer interface {
	Execute(ctx context.Context, req dto.CompleteSubmissionRequest) (dto.SubmissionResponse, error)
}

// outcomeMessage is the wire form on the outcome topic. The handle falls back
// to the message key when the body omits it.
type outcomeMessage struct {
	Handle  string `json:"handle"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

// OutcomeHandler turns outcome messages into CompleteSubmission calls.
type OutcomeHandler struct {
	completer Completer
	logger    *slog.Logger
}

func NewOutcomeHandler(completer Completer, logger *slog.Logger) *OutcomeHandler {
	return &OutcomeHandler{completer: completer, logger: logger}
}

// Handle processes one message. Messages that can never succeed (malformed,
// unknown handle, already completed) are logged and dropped so the consumer
// commits past them; only internal failures are returned.
func (h *OutcomeHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var m outcomeMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		h.logger.WarnContext(ctx, "dropping malformed outcome message", "key", string(msg.Key), "error", err)
		return nil
	}
	if m.Handle == "" {
		m.Handle = string(msg.Key)
	}

	resp, err := h.completer.Execute(ctx, dto.CompleteSubmissionRequest{
		Handle:  m.Handle,
		Outcome: m.Outcome,
		Reason:  m.Reason,
	})
	switch kind := usecase.KindOf(err); kind {
	case usecase.KindNone:
		h.logger.InfoContext(ctx, "submission completed", "handle", resp.Handle, "status", resp.Status)
		return nil
	case usecase.KindInternal:
		return fmt.Errorf("complete submission %s: %w", m.Handle, err)
	default:
		h.logger.WarnContext(ctx, "dropping outcome message",
			"handle", m.Handle,
			"outcome", m.Outcome,
			"reason", kind.String(),
			"error", err,
		)
		return nil
	}
}
