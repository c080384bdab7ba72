package steamtools

// Client is the SDK-facing surface the adapter consumes. QueryItem registers
// a completion callback with the SDK's internal bookkeeping; the callback
// runs later, on the goroutine driving the pump. The remaining methods are
// synchronous reads of the SDK's local state and do not depend on the pump.
type Client interface {
	// QueryItem submits a single-item details query. fn is invoked exactly
	// once, from CallbackRunner.RunCallbacks, when the query completes. A
	// non-nil error means the SDK rejected the submission and fn will never
	// run.
	QueryItem(id uint64, fn func(QueryResult)) error

	// SubscribedItems returns the ids of all items the current user is
	// subscribed to.
	SubscribedItems() []uint64

	// ItemState returns the state bitmask for an item.
	ItemState(id uint64) ItemState

	// ItemInstallInfo returns install details for an item. ok is false when
	// the SDK has no install record for it.
	ItemInstallInfo(id uint64) (info ItemInstallInfo, ok bool)
}

// CallbackRunner drives the SDK's message pump. RunCallbacks executes every
// completion callback whose underlying work has finished since the last
// call, on the calling goroutine. The SDK is not reentrant-safe: all calls
// must come from one consistent goroutine for the client's lifetime.
type CallbackRunner interface {
	RunCallbacks()
}
