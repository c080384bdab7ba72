// Package fake provides an in-memory SDK client for tests and development.
// Completion callbacks queue inside the client until RunCallbacks drains
// them, matching the vendor SDK's pump-driven completion model: a submitted
// query never resolves until the pump is ticked.
package fake

import (
	"sync"

	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools"
)

// Client implements steamtools.Client and steamtools.CallbackRunner.
type Client struct {
	mu         sync.Mutex
	items      map[uint64]steamtools.ItemRecord
	states     map[uint64]steamtools.ItemState
	installs   map[uint64]steamtools.ItemInstallInfo
	subscribed []uint64

	submitErr error
	queryErr  error

	pending []func()
}

// New creates an empty fake client.
func New() *Client {
	return &Client{
		items:    make(map[uint64]steamtools.ItemRecord),
		states:   make(map[uint64]steamtools.ItemState),
		installs: make(map[uint64]steamtools.ItemInstallInfo),
	}
}

// AddItem seeds a queryable item record.
func (c *Client) AddItem(rec steamtools.ItemRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[rec.ID] = rec
}

// SetSubscribed replaces the subscribed item list.
func (c *Client) SetSubscribed(ids ...uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribed = append([]uint64(nil), ids...)
}

// SetState sets the state bitmask for an item.
func (c *Client) SetState(id uint64, st steamtools.ItemState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[id] = st
}

// SetInstallInfo seeds install metadata for an item.
func (c *Client) SetInstallInfo(id uint64, info steamtools.ItemInstallInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.installs[id] = info
}

// FailSubmissions makes every subsequent QueryItem call fail at submission
// time with err. nil restores normal behavior.
func (c *Client) FailSubmissions(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitErr = err
}

// FailQueries makes every subsequent query complete asynchronously with a
// transport error. nil restores normal behavior.
func (c *Client) FailQueries(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queryErr = err
}

// PendingCallbacks reports how many completions are queued awaiting a
// RunCallbacks tick.
func (c *Client) PendingCallbacks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Client) QueryItem(id uint64, fn func(steamtools.QueryResult)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitErr != nil {
		return c.submitErr
	}

	// Resolve the result now but defer delivery until the pump runs.
	var res steamtools.QueryResult
	if c.queryErr != nil {
		res.Err = c.queryErr
	} else if rec, ok := c.items[id]; ok {
		res.Records = []steamtools.ItemRecord{rec}
	}

	c.pending = append(c.pending, func() { fn(res) })
	return nil
}

func (c *Client) RunCallbacks() {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

func (c *Client) SubscribedItems() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uint64(nil), c.subscribed...)
}

func (c *Client) ItemState(id uint64) steamtools.ItemState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[id]
}

func (c *Client) ItemInstallInfo(id uint64) (steamtools.ItemInstallInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	info, ok := c.installs[id]
	return info, ok
}
