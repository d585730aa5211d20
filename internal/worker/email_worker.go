package worker

// email_worker.go
// Processes email jobs from QueueEmail: low-stock alerts and daily sales
// reports. Sends go through the SMTP circuit breaker; jobs that exhaust
// their retries land in the dead letter queue.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/harsh12garg/Kirana-billing-software/internal/infra"
)

const maxEmailAttempts = 3

// Sender is the minimal mail contract; satisfied by *infra.Mailer.
type Sender interface {
	Send(to, subject, body string) error
}

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail  string `json:"to_email"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Attempts int    `json:"attempts"`
}

// EmailWorker processes email jobs from QueueEmail.
type EmailWorker struct {
	mailer     Sender
	cb         *infra.CircuitBreaker
	dispatcher *Dispatcher
	dlq        DLQPusher
}

// DLQPusher abstracts the dead letter queue for testing.
type DLQPusher func(ctx context.Context, queue, jobType string, payload json.RawMessage, reason string, attempts int)

// NewEmailWorker creates an EmailWorker with the provided SMTP sender.
// dlq may be nil, in which case exhausted jobs are only logged.
func NewEmailWorker(mailer Sender, cb *infra.CircuitBreaker, dispatcher *Dispatcher, dlq DLQPusher) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb, dispatcher: dispatcher, dlq: dlq}
}

// Process sends one notification email. Failures re-enqueue the job with an
// incremented attempt counter until maxEmailAttempts is reached.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	err := w.cb.Execute(func() error {
		return w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body)
	})
	if err == nil {
		log.Info().Str("to", payload.ToEmail).Str("subject", payload.Subject).Msg("email_worker: sent")
		return
	}

	payload.Attempts++
	if payload.Attempts >= maxEmailAttempts {
		log.Error().Err(err).Str("to", payload.ToEmail).Int("attempts", payload.Attempts).
			Msg("email_worker: max attempts exceeded, moving to DLQ")
		if w.dlq != nil {
			w.dlq(ctx, QueueEmail, "email", raw, err.Error(), payload.Attempts)
		}
		return
	}

	log.Warn().Err(err).Str("to", payload.ToEmail).Int("attempts", payload.Attempts).
		Msg("email_worker: send failed, re-enqueueing")
	if w.dispatcher != nil {
		_ = w.dispatcher.EnqueueEmail(ctx, payload)
	}
}
