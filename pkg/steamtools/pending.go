package steamtools

import (
	"context"
	"sync"
	"time"
)

// queryOutcome is the terminal value of one item query.
type queryOutcome struct {
	item *WorkshopItem
	err  error
}

// pendingRequest is the single-assignment result slot shared between one
// blocked caller and the one completion callback that will fill it. Created
// fresh per call and never pooled or reused, so no state can leak between
// requests.
type pendingRequest struct {
	once sync.Once
	done chan queryOutcome
}

func newPendingRequest() *pendingRequest {
	return &pendingRequest{done: make(chan queryOutcome, 1)}
}

// fill stores the outcome. The slot transitions from empty to filled exactly
// once; later calls are ignored.
func (p *pendingRequest) fill(item *WorkshopItem, err error) {
	p.once.Do(func() {
		p.done <- queryOutcome{item: item, err: err}
	})
}

// wait blocks until the slot is filled, the context is canceled, or the
// bounded wait expires. timeout <= 0 waits indefinitely.
func (p *pendingRequest) wait(ctx context.Context, timeout time.Duration) (*WorkshopItem, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}

	select {
	case out := <-p.done:
		return out.item, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-expired:
		return nil, ErrQueryTimeout
	}
}
