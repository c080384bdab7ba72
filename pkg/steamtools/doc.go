// Package steamtools bridges the callback-driven Steam Workshop (UGC) SDK
// onto the two integration surfaces a host application shell expects: a
// blocking request/response call usable from concurrent worker goroutines,
// and a fire-and-forget relay between named events.
//
// The SDK completes queries by invoking registered callbacks, and those
// callbacks only run while the SDK's message pump is driven. The host's
// control loop calls Service.Tick once per iteration to drive the pump;
// worker goroutines call Service.FetchItem and block until the matching
// completion callback fills their result slot. The pump goroutine must
// never block, so FetchItem must not be called from it.
//
// Implementations of the SDK-facing Client and CallbackRunner interfaces
// are provided under subpackages (sdk/fake for tests and development); the
// production implementation is the vendor SDK binding supplied by the host.
package steamtools
