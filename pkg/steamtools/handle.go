package steamtools

import "sync"

// clientHandle owns the shared SDK client for the session. The mutex guards
// the handle itself: it is held only while a caller submits work or reads
// local state, never across a wait for asynchronous completion.
type clientHandle struct {
	mu     sync.Mutex
	client Client
	closed bool
}

func newClientHandle(c Client) *clientHandle {
	return &clientHandle{client: c}
}

// withClient runs f with exclusive access to the client. The lock is
// released before withClient returns; completion callbacks registered by f
// run later, out of lock scope, on the pump goroutine. Returns
// ErrClientClosed after close.
func (h *clientHandle) withClient(f func(Client) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClientClosed
	}
	return f(h.client)
}

func (h *clientHandle) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.client = nil
}
