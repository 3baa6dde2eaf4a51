package netutil_test

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearkit/bearkit/pkg/netutil"
)

func TestFreePort(t *testing.T) {
	t.Parallel()

	port, err := netutil.FreePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)
	assert.LessOrEqual(t, port, 65535)

	// The returned port is actually bindable.
	l, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

func TestFindIPAddresses(t *testing.T) {
	t.Parallel()

	t.Run("loopback matches", func(t *testing.T) {
		t.Parallel()

		addrs, err := netutil.FindIPAddresses(`^127\.0\.0\.1$`)
		require.NoError(t, err)
		assert.Contains(t, addrs, "127.0.0.1")
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		t.Parallel()

		addrs, err := netutil.FindIPAddresses(`^203\.0\.113\.\d+$`)
		require.NoError(t, err)
		assert.Empty(t, addrs)
	})

	t.Run("results are sorted and unique", func(t *testing.T) {
		t.Parallel()

		addrs, err := netutil.FindIPAddresses(`.*`)
		require.NoError(t, err)
		assert.IsIncreasing(t, addrs)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := netutil.FindIPAddresses(`[unclosed`)
		assert.Error(t, err)
	})
}

func TestIsPortOpen(t *testing.T) {
	t.Parallel()

	t.Run("open port", func(t *testing.T) {
		t.Parallel()

		l, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)
		defer l.Close()

		port := l.Addr().(*net.TCPAddr).Port
		assert.True(t, netutil.IsPortOpen("localhost", port, time.Second))
	})

	t.Run("closed port", func(t *testing.T) {
		t.Parallel()

		port, err := netutil.FreePort()
		require.NoError(t, err)

		assert.False(t, netutil.IsPortOpen("localhost", port, 200*time.Millisecond))
	})
}
