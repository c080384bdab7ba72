package steamtools

import "context"

// Service is the adapter surface consumed by the host shell.
type Service interface {
	// FetchItem submits an item details query and blocks the calling
	// goroutine until the completion callback resolves it. Safe for
	// concurrent use from worker goroutines; must never be called from the
	// goroutine driving Tick, because the callback that would unblock it
	// runs there.
	FetchItem(ctx context.Context, id uint64) (*WorkshopItem, error)

	// RequestItem submits the same query as FetchItem without blocking. fn
	// runs on the pump goroutine once the completion callback fires, with
	// either the descriptor or the extraction error. The returned error
	// covers submission only.
	RequestItem(id uint64, fn func(*WorkshopItem, error)) error

	// ListInstalledItems enumerates subscribed items whose state includes
	// the installed flag, joined with their install metadata. Synchronous:
	// it reads the SDK's local state and does not depend on the pump.
	ListInstalledItems() ([]LocalItem, error)

	// Tick drains pending SDK completion callbacks. The host control loop
	// calls it once per iteration, always from the same goroutine. It must
	// never block; a waiting FetchItem caller never stalls it.
	Tick()

	// Close tears down the shared client handle. Blocked FetchItem calls
	// whose completion never arrives are released only by their context or
	// the configured query timeout.
	Close() error
}
