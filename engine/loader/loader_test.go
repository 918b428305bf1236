package loader

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingBackend lets tests hold a fetch open until released.
type blockingBackend struct {
	calls   atomic.Int32
	release chan struct{}
	asset   *Asset
	err     error
}

func (b *blockingBackend) Load(path string) (*Asset, error) {
	b.calls.Add(1)
	if b.release != nil {
		<-b.release
	}
	if b.err != nil {
		return nil, b.err
	}
	if b.asset != nil {
		return b.asset, nil
	}
	return &Asset{Path: path, Kind: KindTexture}, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestLoaderDeliversAssetAsynchronously(t *testing.T) {
	backend := &blockingBackend{}
	l := NewLoader(WithBackend(".fake", backend))

	var got atomic.Pointer[Asset]
	l.Load("model.fake", func(asset *Asset, err error) {
		require.NoError(t, err)
		got.Store(asset)
	})

	waitFor(t, func() bool { return got.Load() != nil })
	assert.Equal(t, "model.fake", got.Load().Path)

	cached, ok := l.Get("model.fake")
	require.True(t, ok)
	assert.Same(t, got.Load(), cached)
}

func TestLoaderDeduplicatesInFlightFetches(t *testing.T) {
	backend := &blockingBackend{release: make(chan struct{})}
	l := NewLoader(WithBackend(".fake", backend))

	var wg sync.WaitGroup
	var first, second atomic.Pointer[Asset]
	wg.Add(2)
	l.Load("shared.fake", func(asset *Asset, err error) {
		defer wg.Done()
		require.NoError(t, err)
		first.Store(asset)
	})
	l.Load("shared.fake", func(asset *Asset, err error) {
		defer wg.Done()
		require.NoError(t, err)
		second.Store(asset)
	})

	waitFor(t, func() bool { return backend.calls.Load() == 1 })
	close(backend.release)
	wg.Wait()

	assert.Equal(t, int32(1), backend.calls.Load(), "one fetch should serve both requests")
	assert.Same(t, first.Load(), second.Load())
}

func TestLoaderCacheHitStillRunsCallbackAsynchronously(t *testing.T) {
	backend := &blockingBackend{}
	l := NewLoader(WithBackend(".fake", backend))

	var warm atomic.Bool
	l.Load("hit.fake", func(*Asset, error) { warm.Store(true) })
	waitFor(t, func() bool { return warm.Load() })

	// The second request is a cache hit. The callback must not have run by
	// the time Load returns.
	var hit atomic.Bool
	l.Load("hit.fake", func(asset *Asset, err error) {
		require.NoError(t, err)
		hit.Store(true)
	})
	assert.False(t, hit.Load(), "cache-hit callback must be deferred")

	waitFor(t, func() bool { return hit.Load() })
	assert.Equal(t, int32(1), backend.calls.Load(), "cache hit must not refetch")
}

func TestLoaderReportsFailuresAndRecovers(t *testing.T) {
	backend := &blockingBackend{err: errors.New("disk gone")}
	l := NewLoader(WithBackend(".fake", backend))

	var gotErr atomic.Pointer[error]
	l.Load("broken.fake", func(asset *Asset, err error) {
		assert.Nil(t, asset)
		gotErr.Store(&err)
	})

	waitFor(t, func() bool { return gotErr.Load() != nil })
	assert.ErrorContains(t, *gotErr.Load(), "disk gone")

	// The failure must not leave the outstanding counter stuck.
	waitFor(t, func() bool { return !l.IsLoading() })

	_, ok := l.Get("broken.fake")
	assert.False(t, ok, "failed loads must not be cached")
}

func TestLoaderRejectsUnsupportedExtension(t *testing.T) {
	l := NewLoader()

	var gotErr atomic.Pointer[error]
	l.Load("document.xyz", func(asset *Asset, err error) {
		assert.Nil(t, asset)
		gotErr.Store(&err)
	})

	waitFor(t, func() bool { return gotErr.Load() != nil })
	assert.ErrorContains(t, *gotErr.Load(), "unsupported asset extension")
	waitFor(t, func() bool { return !l.IsLoading() })
}

func TestLoaderIsLoadingTracksInFlightFetches(t *testing.T) {
	backend := &blockingBackend{release: make(chan struct{})}
	l := NewLoader(WithBackend(".fake", backend))

	assert.False(t, l.IsLoading())

	done := make(chan struct{})
	l.Load("slow.fake", func(*Asset, error) { close(done) })
	waitFor(t, func() bool { return l.IsLoading() })

	close(backend.release)
	<-done
	waitFor(t, func() bool { return !l.IsLoading() })
}

func TestLoaderClearDropsCache(t *testing.T) {
	backend := &blockingBackend{}
	l := NewLoader(WithBackend(".fake", backend))

	var done atomic.Bool
	l.Load("once.fake", func(*Asset, error) { done.Store(true) })
	waitFor(t, func() bool { return done.Load() })

	l.Clear()
	_, ok := l.Get("once.fake")
	assert.False(t, ok)

	// A fresh request after Clear refetches.
	var again atomic.Bool
	l.Load("once.fake", func(*Asset, error) { again.Store(true) })
	waitFor(t, func() bool { return again.Load() })
	assert.Equal(t, int32(2), backend.calls.Load())
}
