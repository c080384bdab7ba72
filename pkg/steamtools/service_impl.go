package steamtools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// service implements the Service interface
type service struct {
	handle       *clientHandle
	runner       CallbackRunner
	queryTimeout time.Duration
	logger       *slog.Logger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithClient sets the SDK client the service submits queries through.
func WithClient(c Client) Option {
	return func(s *service) {
		s.handle = newClientHandle(c)
	}
}

// WithCallbackRunner sets the pump object driven by Tick.
func WithCallbackRunner(r CallbackRunner) Option {
	return func(s *service) {
		s.runner = r
	}
}

// WithQueryTimeout bounds the wait for a completion callback in FetchItem.
// Zero disables the bound and restores an indefinite wait.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *service) {
		s.queryTimeout = d
	}
}

// WithLogger sets the logger used for diagnostics that have no caller to
// surface to. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *service) {
		s.logger = l
	}
}

// New creates a new service instance with the given options. A client and a
// callback runner are required.
func New(options ...Option) (Service, error) {
	s := &service{
		logger: slog.Default(),
	}

	for _, option := range options {
		option(s)
	}

	if s.handle == nil {
		return nil, fmt.Errorf("steamtools: client is required")
	}
	if s.runner == nil {
		return nil, fmt.Errorf("steamtools: callback runner is required")
	}

	return s, nil
}

func (s *service) FetchItem(ctx context.Context, id uint64) (*WorkshopItem, error) {
	pending := newPendingRequest()
	if err := s.RequestItem(id, pending.fill); err != nil {
		return nil, err
	}

	item, err := pending.wait(ctx, s.queryTimeout)
	if err != nil {
		return nil, &QueryError{ItemID: id, Op: "fetch", Err: err}
	}
	return item, nil
}

func (s *service) RequestItem(id uint64, fn func(*WorkshopItem, error)) error {
	if id == 0 {
		return &QueryError{ItemID: id, Op: "submit", Err: ErrInvalidItemID}
	}

	// The handle lock covers submission only. The completion callback runs
	// later, on the pump goroutine, well out of lock scope.
	err := s.handle.withClient(func(c Client) error {
		return c.QueryItem(id, func(res QueryResult) {
			fn(itemFromResult(res))
		})
	})
	if err != nil {
		if errors.Is(err, ErrClientClosed) {
			return &QueryError{ItemID: id, Op: "submit", Err: err}
		}
		return &QueryError{ItemID: id, Op: "submit", Err: fmt.Errorf("%w: %v", ErrQuerySubmission, err)}
	}
	return nil
}

func (s *service) Tick() {
	s.runner.RunCallbacks()
}

func (s *service) Close() error {
	s.handle.close()
	return nil
}

// itemFromResult applies the shared extraction rules: a transport error
// wins, then a success with no record, then the first record with its
// best-effort preview URL.
func itemFromResult(res QueryResult) (*WorkshopItem, error) {
	if res.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, res.Err)
	}
	if len(res.Records) == 0 {
		return nil, ErrEmptyResult
	}

	rec := res.Records[0]
	return &WorkshopItem{
		ID:          rec.ID,
		Name:        rec.Title,
		Description: rec.Description,
		Preview:     rec.Preview,
	}, nil
}
