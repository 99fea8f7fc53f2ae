package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storekit/pkg/logger"
)

// asyncStorage decouples event recording from the backing store by pushing
// events through a buffered channel to a single writer goroutine. When the
// buffer is full the event is dropped rather than blocking the caller;
// audit must never slow down or fail an authentication operation.
type asyncStorage struct {
	inner  Storage
	events chan Event
	log    *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func newAsyncStorage(inner Storage, bufferSize int, log *slog.Logger) *asyncStorage {
	s := &asyncStorage{
		inner:  inner,
		events: make(chan Event, bufferSize),
		log:    log,
		done:   make(chan struct{}),
	}
	go s.worker()
	return s
}

func (s *asyncStorage) Store(ctx context.Context, event Event) error {
	select {
	case s.events <- event:
		return nil
	default:
		// Buffer full: drop instead of blocking the hot path.
		s.log.Warn("audit event dropped, buffer full",
			logger.Event(event.Kind),
			logger.Component("audit"),
		)
		return nil
	}
}

func (s *asyncStorage) worker() {
	defer close(s.done)
	for event := range s.events {
		if err := s.inner.Store(context.Background(), event); err != nil {
			s.log.Error("failed to store audit event",
				logger.Error(err),
				logger.Event(event.Kind),
				logger.Component("audit"),
			)
		}
	}
}

// Close drains buffered events and stops the worker.
func (s *asyncStorage) Close() error {
	s.closeOnce.Do(func() {
		close(s.events)
	})
	<-s.done
	return nil
}
