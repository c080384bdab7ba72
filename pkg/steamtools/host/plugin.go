// Package host wires the workshop adapter into a host application shell's
// plugin lifecycle: one Setup per session, one Tick per control-loop
// iteration, and named commands invoked from worker goroutines.
package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/bus"
)

var (
	// ErrUnknownCommand indicates a command name with no registered handler
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCommandExists indicates a command name registered twice
	ErrCommandExists = errors.New("command already registered")

	// ErrAlreadySetup indicates Setup was called more than once per session
	ErrAlreadySetup = errors.New("plugin already set up")
)

// Command names exposed to the shell.
const (
	CommandGetContentItem     = "get_content_item"
	CommandGetSubscribedItems = "get_subscribed_items"
)

// CommandFunc handles one named command. args is the raw JSON argument
// object from the shell; the returned value is serialized back to the
// caller, and any error is surfaced to it.
type CommandFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Plugin is the session-scoped binding between the shell and the adapter.
type Plugin struct {
	svc    steamtools.Service
	bus    *bus.Bus
	logger *slog.Logger

	mu       sync.Mutex
	commands map[string]CommandFunc
	relay    *steamtools.Relay
	ready    bool
}

// New creates an unset-up plugin over svc and b. A nil logger falls back to
// slog.Default.
func New(svc steamtools.Service, b *bus.Bus, logger *slog.Logger) *Plugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Plugin{
		svc:      svc,
		bus:      b,
		logger:   logger,
		commands: make(map[string]CommandFunc),
	}
}

// Setup binds the event relay and registers the built-in commands. It runs
// exactly once per session; a second call fails with ErrAlreadySetup.
func (p *Plugin) Setup() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return ErrAlreadySetup
	}

	relay := steamtools.NewRelay(p.svc, p.bus, p.logger)
	if err := relay.Bind(); err != nil {
		return fmt.Errorf("bind relay: %w", err)
	}
	p.relay = relay

	p.commands[CommandGetContentItem] = p.getContentItem
	p.commands[CommandGetSubscribedItems] = p.getSubscribedItems
	p.ready = true
	return nil
}

// Register adds a custom command. Built-in names cannot be replaced.
func (p *Plugin) Register(name string, fn CommandFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrCommandExists, name)
	}
	p.commands[name] = fn
	return nil
}

// Invoke dispatches a named command. Safe for concurrent use from worker
// goroutines; blocking commands block only their caller.
func (p *Plugin) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	p.mu.Lock()
	fn, exists := p.commands[name]
	p.mu.Unlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return fn(ctx, args)
}

// Tick drives the SDK pump. The shell calls it once per control-loop
// iteration, always from the same goroutine.
func (p *Plugin) Tick() {
	p.svc.Tick()
}

// Shutdown unbinds the relay and tears down the client handle.
func (p *Plugin) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.relay != nil {
		if err := p.relay.Unbind(); err != nil {
			p.logger.Warn("unbind relay failed", "error", err)
		}
		p.relay = nil
	}
	p.ready = false
	return p.svc.Close()
}
