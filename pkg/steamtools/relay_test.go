package steamtools_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/bus"
	sdkfake "github.com/HALLauncher/hal-steam-tools/pkg/steamtools/sdk/fake"
)

type relayFixture struct {
	client *sdkfake.Client
	svc    steamtools.Service
	bus    *bus.Bus
	relay  *steamtools.Relay
	logs   *bytes.Buffer
	got    chan string
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()

	client := sdkfake.New()
	svc, err := steamtools.New(
		steamtools.WithClient(client),
		steamtools.WithCallbackRunner(client),
	)
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))

	b := bus.New()
	relay := steamtools.NewRelay(svc, b, logger)
	require.NoError(t, relay.Bind())

	got := make(chan string, 1)
	_, err = b.Subscribe(steamtools.EventGotItem, func(ev bus.Event) {
		got <- ev.Payload
	})
	require.NoError(t, err)

	return &relayFixture{client: client, svc: svc, bus: b, relay: relay, logs: logs, got: got}
}

func (f *relayFixture) outbound(t *testing.T) (string, bool) {
	t.Helper()
	select {
	case payload := <-f.got:
		return payload, true
	default:
		return "", false
	}
}

func TestRelayPublishesDescriptor(t *testing.T) {
	f := newRelayFixture(t)
	f.client.AddItem(steamtools.ItemRecord{ID: 1337, Title: "Example Mod"})

	require.NoError(t, f.bus.Publish(steamtools.EventNeedItem, "1337"))

	// Submission happened during dispatch; the completion only fires once
	// the pump runs.
	_, delivered := f.outbound(t)
	assert.False(t, delivered)

	f.svc.Tick()

	payload, delivered := f.outbound(t)
	require.True(t, delivered)

	var item steamtools.WorkshopItem
	require.NoError(t, json.Unmarshal([]byte(payload), &item))
	assert.Equal(t, uint64(1337), item.ID)
	assert.Equal(t, "Example Mod", item.Name)
	assert.Empty(t, item.Description)
	assert.Empty(t, item.Preview)
}

func TestRelayDropsNonNumericPayload(t *testing.T) {
	f := newRelayFixture(t)
	f.client.AddItem(steamtools.ItemRecord{ID: 1337, Title: "Example Mod"})

	require.NoError(t, f.bus.Publish(steamtools.EventNeedItem, "abc"))
	f.svc.Tick()

	_, delivered := f.outbound(t)
	assert.False(t, delivered)
	assert.Equal(t, 0, f.client.PendingCallbacks())
	assert.Contains(t, f.logs.String(), "not an item id")
}

func TestRelayDropsEmptyPayload(t *testing.T) {
	f := newRelayFixture(t)

	require.NoError(t, f.bus.Publish(steamtools.EventNeedItem, ""))
	f.svc.Tick()

	_, delivered := f.outbound(t)
	assert.False(t, delivered)
	assert.Contains(t, f.logs.String(), "payload is empty")
}

func TestRelayDropsFailedQuery(t *testing.T) {
	f := newRelayFixture(t)
	f.client.FailQueries(errors.New("network unreachable"))

	require.NoError(t, f.bus.Publish(steamtools.EventNeedItem, "1337"))
	f.svc.Tick()

	_, delivered := f.outbound(t)
	assert.False(t, delivered)
	assert.Contains(t, f.logs.String(), "item request failed")
}

func TestRelayDropsEmptyResult(t *testing.T) {
	f := newRelayFixture(t)

	require.NoError(t, f.bus.Publish(steamtools.EventNeedItem, "404"))
	f.svc.Tick()

	_, delivered := f.outbound(t)
	assert.False(t, delivered)
	assert.Contains(t, f.logs.String(), "item request failed")
}

func TestRelayUnbindStopsHandling(t *testing.T) {
	f := newRelayFixture(t)
	f.client.AddItem(steamtools.ItemRecord{ID: 1337, Title: "Example Mod"})

	require.NoError(t, f.relay.Unbind())
	require.NoError(t, f.bus.Publish(steamtools.EventNeedItem, "1337"))
	f.svc.Tick()

	_, delivered := f.outbound(t)
	assert.False(t, delivered)
	assert.Equal(t, 0, f.client.PendingCallbacks())
}
