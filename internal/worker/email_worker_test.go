package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh12garg/Kirana-billing-software/internal/infra"
)

type stubSender struct {
	sent []EmailJobPayload
	err  error
}

func (s *stubSender) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, EmailJobPayload{ToEmail: to, Subject: subject, Body: body})
	return nil
}

func mustMarshal(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestEmailWorker_Sends(t *testing.T) {
	sender := &stubSender{}
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	w := NewEmailWorker(sender, cb, nil, nil)

	w.Process(context.Background(), mustMarshal(t, EmailJobPayload{
		ToEmail: "owner@shop.in",
		Subject: "Low stock alert: Rice 1kg",
		Body:    "Only 3 left",
	}))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "owner@shop.in", sender.sent[0].ToEmail)
}

func TestEmailWorker_SkipsEmptyRecipient(t *testing.T) {
	sender := &stubSender{}
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	w := NewEmailWorker(sender, cb, nil, nil)

	w.Process(context.Background(), mustMarshal(t, EmailJobPayload{Subject: "no recipient"}))
	assert.Empty(t, sender.sent)
}

func TestEmailWorker_ExhaustedJobGoesToDLQ(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp: connection refused")}
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	var dlqCalls int
	dlq := func(_ context.Context, queue, jobType string, _ json.RawMessage, reason string, attempts int) {
		dlqCalls++
		assert.Equal(t, QueueEmail, queue)
		assert.Equal(t, "email", jobType)
		assert.Contains(t, reason, "connection refused")
		assert.Equal(t, maxEmailAttempts, attempts)
	}
	w := NewEmailWorker(sender, cb, nil, dlq)

	// A job already at attempts-1 fails once more and lands in the DLQ
	w.Process(context.Background(), mustMarshal(t, EmailJobPayload{
		ToEmail:  "owner@shop.in",
		Subject:  "doomed",
		Attempts: maxEmailAttempts - 1,
	}))

	assert.Equal(t, 1, dlqCalls)
}

func TestEmailWorker_CircuitBreakerTrips(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp: timeout")}
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})
	w := NewEmailWorker(sender, cb, nil, nil)

	payload := mustMarshal(t, EmailJobPayload{ToEmail: "owner@shop.in", Subject: "x"})
	w.Process(context.Background(), payload)
	w.Process(context.Background(), payload)

	assert.Equal(t, infra.CBOpen, cb.State())

	// Open breaker fast-fails without touching SMTP
	sender.err = nil
	w.Process(context.Background(), payload)
	assert.Empty(t, sender.sent)
}

func TestBuildDailyReportBody(t *testing.T) {
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	body := BuildDailyReportBody("Gupta General Store", "₹", date, decimal.NewFromFloat(12345.5))

	assert.Contains(t, body, "Gupta General Store")
	assert.Contains(t, body, "30/08/2026")
	assert.Contains(t, body, "₹12345.50")
}
