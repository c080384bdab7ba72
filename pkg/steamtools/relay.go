package steamtools

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/bus"
)

// Event names for the fire-and-forget relay surface.
const (
	// EventNeedItem carries a decimal string encoding a 64-bit item id.
	EventNeedItem = "need-content-item"

	// EventGotItem carries the JSON-encoded WorkshopItem. Nothing is
	// published on failure.
	EventGotItem = "got-content-item"
)

// Relay binds the inbound item-request event to the outbound item event.
// Every failure kind is recovered locally: there is no caller to notify, so
// the relay logs and drops. No step blocks; the query completion runs on
// the pump goroutine.
type Relay struct {
	svc    Service
	bus    *bus.Bus
	logger *slog.Logger
	sub    bus.SubscriptionID
	bound  bool
}

// NewRelay creates a relay over svc publishing through b. A nil logger
// falls back to slog.Default.
func NewRelay(svc Service, b *bus.Bus, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{svc: svc, bus: b, logger: logger}
}

// Bind subscribes the relay to EventNeedItem. The registration lives until
// Unbind or bus close.
func (r *Relay) Bind() error {
	if r.bound {
		return fmt.Errorf("relay already bound")
	}
	id, err := r.bus.Subscribe(EventNeedItem, r.handleNeedItem)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", EventNeedItem, err)
	}
	r.sub = id
	r.bound = true
	return nil
}

// Unbind removes the relay's subscription.
func (r *Relay) Unbind() error {
	if !r.bound {
		return nil
	}
	r.bound = false
	return r.bus.Unsubscribe(r.sub)
}

func (r *Relay) handleNeedItem(ev bus.Event) {
	if ev.Payload == "" {
		r.logger.Error("need-content-item payload is empty",
			"event_id", ev.ID, "error", ErrMalformedPayload)
		return
	}
	id, err := strconv.ParseUint(ev.Payload, 10, 64)
	if err != nil || id == 0 {
		r.logger.Error("need-content-item payload is not an item id",
			"payload", ev.Payload, "event_id", ev.ID, "error", ErrMalformedPayload)
		return
	}

	err = r.svc.RequestItem(id, func(item *WorkshopItem, err error) {
		if err != nil {
			r.logger.Error("item request failed", "item_id", id, "event_id", ev.ID, "error", err)
			return
		}
		payload, err := json.Marshal(item)
		if err != nil {
			r.logger.Error("encode item failed", "item_id", id, "error", err)
			return
		}
		if err := r.bus.Publish(EventGotItem, string(payload)); err != nil {
			r.logger.Error("publish got-content-item failed", "item_id", id, "error", err)
		}
	})
	if err != nil {
		r.logger.Error("item query submission failed", "item_id", id, "event_id", ev.ID, "error", err)
	}
}
