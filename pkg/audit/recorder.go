package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storekit/pkg/logger"
)

// Recorder is the audit sink the authentication service emits events into.
// Recording is fire-and-forget: storage failures are logged locally and
// never surface to the caller.
type Recorder struct {
	storage Storage
	log     *slog.Logger
}

// Option configures a Recorder.
type Option func(*recorderConfig)

type recorderConfig struct {
	log             *slog.Logger
	asyncBufferSize int
}

// WithLogger sets the logger used for dropped or failed events.
func WithLogger(log *slog.Logger) Option {
	return func(c *recorderConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithAsyncBuffer wraps the storage in a buffered asynchronous writer so
// recording never waits on the backing store. Events are dropped with a log
// entry when the buffer is full.
func WithAsyncBuffer(size int) Option {
	return func(c *recorderConfig) {
		c.asyncBufferSize = size
	}
}

// NewRecorder creates an audit recorder over the given storage.
func NewRecorder(storage Storage, opts ...Option) *Recorder {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	c := &recorderConfig{log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	if c.asyncBufferSize > 0 {
		storage = newAsyncStorage(storage, c.asyncBufferSize, c.log)
	}

	return &Recorder{storage: storage, log: c.log}
}

// Record stores a security event. identityID may be nil for events that
// cannot be attributed to an account. Safe to call on a nil Recorder, which
// makes auditing strictly optional for service wiring.
func (r *Recorder) Record(ctx context.Context, identityID *int64, kind Kind, message string) {
	if r == nil {
		return
	}

	event := Event{
		ID:         uuid.New().String(),
		IdentityID: identityID,
		Kind:       kind,
		Message:    message,
		CreatedAt:  time.Now(),
	}

	if err := event.Validate(); err != nil {
		r.log.Error("invalid audit event",
			logger.Error(err),
			logger.Component("audit"),
		)
		return
	}

	if err := r.storage.Store(ctx, event); err != nil {
		r.log.Error("failed to record audit event",
			logger.Error(err),
			logger.Event(kind),
			logger.Component("audit"),
		)
	}
}

// Close flushes an asynchronous storage wrapper if one is configured.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	if closer, ok := r.storage.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
