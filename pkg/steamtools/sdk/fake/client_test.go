package fake_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/sdk/fake"
)

func TestQueryCompletesOnlyOnRunCallbacks(t *testing.T) {
	client := fake.New()
	client.AddItem(steamtools.ItemRecord{ID: 1, Title: "one"})

	fired := 0
	var got steamtools.QueryResult
	require.NoError(t, client.QueryItem(1, func(res steamtools.QueryResult) {
		fired++
		got = res
	}))

	assert.Zero(t, fired)
	assert.Equal(t, 1, client.PendingCallbacks())

	client.RunCallbacks()
	require.Equal(t, 1, fired)
	assert.Zero(t, client.PendingCallbacks())
	require.Len(t, got.Records, 1)
	assert.Equal(t, "one", got.Records[0].Title)

	// A second tick must not replay drained callbacks.
	client.RunCallbacks()
	assert.Equal(t, 1, fired)
}

func TestQueryUnknownItemCompletesEmpty(t *testing.T) {
	client := fake.New()

	var got steamtools.QueryResult
	require.NoError(t, client.QueryItem(404, func(res steamtools.QueryResult) { got = res }))
	client.RunCallbacks()

	assert.NoError(t, got.Err)
	assert.Empty(t, got.Records)
}

func TestFailSubmissions(t *testing.T) {
	client := fake.New()
	sentinel := errors.New("not logged on")
	client.FailSubmissions(sentinel)

	err := client.QueryItem(1, func(steamtools.QueryResult) {
		t.Fatal("callback must not be registered on submission failure")
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Zero(t, client.PendingCallbacks())
}

func TestFailQueries(t *testing.T) {
	client := fake.New()
	sentinel := errors.New("network unreachable")
	client.FailQueries(sentinel)

	var got steamtools.QueryResult
	require.NoError(t, client.QueryItem(1, func(res steamtools.QueryResult) { got = res }))
	client.RunCallbacks()

	assert.ErrorIs(t, got.Err, sentinel)
}

func TestLocalState(t *testing.T) {
	client := fake.New()
	client.SetSubscribed(1, 2)
	client.SetState(1, steamtools.ItemStateSubscribed|steamtools.ItemStateInstalled)
	client.SetInstallInfo(1, steamtools.ItemInstallInfo{Folder: "/w/1", SizeOnDisk: 10})

	assert.Equal(t, []uint64{1, 2}, client.SubscribedItems())
	assert.True(t, client.ItemState(1).Has(steamtools.ItemStateInstalled))
	assert.Equal(t, steamtools.ItemStateNone, client.ItemState(2))

	info, ok := client.ItemInstallInfo(1)
	require.True(t, ok)
	assert.Equal(t, "/w/1", info.Folder)

	_, ok = client.ItemInstallInfo(2)
	assert.False(t, ok)
}
