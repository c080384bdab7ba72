package steamtools

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	Client
}

func TestWithClientRunsWithTheClient(t *testing.T) {
	c := &stubClient{}
	h := newClientHandle(c)

	var got Client
	err := h.withClient(func(client Client) error {
		got = client
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestWithClientPropagatesError(t *testing.T) {
	h := newClientHandle(&stubClient{})
	sentinel := errors.New("submit failed")

	err := h.withClient(func(Client) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestWithClientAfterClose(t *testing.T) {
	h := newClientHandle(&stubClient{})
	h.close()

	err := h.withClient(func(Client) error {
		t.Fatal("must not run after close")
		return nil
	})
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestWithClientMutualExclusion(t *testing.T) {
	h := newClientHandle(&stubClient{})

	var inside atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.withClient(func(Client) error {
				assert.Equal(t, int32(1), inside.Add(1))
				inside.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()
}
