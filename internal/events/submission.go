// Package events describes what the auth form announces on the bus.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfrund/authpage/internal/authform"
	"github.com/nfrund/authpage/internal/pubsub"
)

// TopicSubmitted carries one message per form submission.
const TopicSubmitted = "authform.submitted"

// Submission records the result of one submit. It never carries field
// values beyond the mode flags.
type Submission struct {
	FormID     string `json:"form_id"`
	Mode       string `json:"mode"`
	GoogleMode bool   `json:"google_mode"`
	Accepted   bool   `json:"accepted"`
	// Result is the outcome kind on success or the rejection kind otherwise.
	Result  string `json:"result"`
	Message string `json:"message"`
}

// NewSubmission builds the event for a submit of state that produced out or err.
func NewSubmission(formID string, state authform.FormState, out authform.Outcome, err error) Submission {
	ev := Submission{
		FormID:     formID,
		Mode:       state.Mode.String(),
		GoogleMode: state.GoogleMode,
	}
	var ve *authform.ValidationError
	switch {
	case err == nil:
		ev.Accepted = true
		ev.Result = out.Kind.String()
		ev.Message = out.Message
	case errors.As(err, &ve):
		ev.Result = ve.Kind.String()
		ev.Message = ve.Message
	default:
		ev.Result = "error"
		ev.Message = err.Error()
	}
	return ev
}

// Publish sends ev on TopicSubmitted.
func Publish(ctx context.Context, pub pubsub.Publisher, ev Submission) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal submission event: %w", err)
	}
	return pub.Publish(ctx, pubsub.Message{
		Topic:   TopicSubmitted,
		Key:     ev.FormID,
		Payload: payload,
	})
}

// Decode parses a TopicSubmitted payload.
func Decode(msg pubsub.Message) (Submission, error) {
	var ev Submission
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return Submission{}, fmt.Errorf("decode submission event: %w", err)
	}
	return ev, nil
}

// LogSubmissions subscribes to TopicSubmitted and writes every event to
// logger until ctx is canceled.
func LogSubmissions(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	return sub.Subscribe(ctx, TopicSubmitted, func(ctx context.Context, msg pubsub.Message) error {
		ev, err := Decode(msg)
		if err != nil {
			return err
		}
		logger.Info("Form submitted",
			"form_id", ev.FormID,
			"mode", ev.Mode,
			"google_mode", ev.GoogleMode,
			"accepted", ev.Accepted,
			"result", ev.Result,
		)
		return nil
	})
}
