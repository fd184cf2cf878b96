package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Parallel()
	s := NewStore(NewTable([]Record{{MCC: "208", MNC: "01", Network: "Orange"}}))
	r, ok := s.LookupByMccMnc("208", "01")
	require.True(t, ok)
	assert.Equal(t, "Orange", r.Network)

	s.Swap(NewTable([]Record{{MCC: "208", MNC: "10", Network: "SFR"}}))
	_, ok = s.LookupByMccMnc("208", "01")
	assert.False(t, ok)
	r, ok = s.LookupByMcc("208")
	require.True(t, ok)
	assert.Equal(t, "SFR", r.Network)
	assert.Equal(t, 1, s.Len())

	assert.Same(t, Default(), NewStore(nil).Table())
}

func TestStoreWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"mcc":"505","mnc":"01","network":"Telstra"}]`), 0o644))
	table, err := LoadFile(path)
	require.NoError(t, err)
	s := NewStore(table)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watch(ctx, path, 10*time.Millisecond) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	write := func(content string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	lookup := func() string {
		r, _ := s.LookupByMccMnc("505", "01")
		return r.Network
	}

	// The watcher may not be registered yet, so keep rewriting until it is.
	assert.Eventually(t, func() bool {
		write(`[{"mcc":"505","mnc":"01","network":"Telstra Mobile"}]`)
		return lookup() == "Telstra Mobile"
	}, 5*time.Second, 50*time.Millisecond)

	write(`not json`)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, "Telstra Mobile", lookup())
}
