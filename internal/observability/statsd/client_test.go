package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUDPListener binds a loopback UDP socket and returns its address plus a
// channel of received datagrams.
func newUDPListener(t *testing.T) (string, <-chan string) {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	lines := make(chan string, 16)
	go func() {
		buf := make([]byte, 1024)
		for {
			n, _, rerr := conn.ReadFrom(buf)
			if rerr != nil {
				return
			}
			lines <- string(buf[:n])
		}
	}()
	return conn.LocalAddr().String(), lines
}

func receiveLine(t *testing.T, lines <-chan string) string {
	t.Helper()
	select {
	case line := <-lines:
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for statsd datagram")
		return ""
	}
}

func TestClientCount(t *testing.T) {
	addr, lines := newUDPListener(t)

	client, err := NewClient(Config{Enabled: true, Address: addr, Prefix: "jobdeck"})
	require.NoError(t, err)
	defer client.Close()
	require.True(t, client.Enabled())

	client.Count("job.transition", 1, map[string]string{
		"outcome":  "completed",
		"job_type": "weather",
	})

	assert.Equal(t,
		"jobdeck.job.transition:1|c|#job_type:weather,outcome:completed",
		receiveLine(t, lines))
}

func TestClientTiming(t *testing.T) {
	addr, lines := newUDPListener(t)

	client, err := NewClient(Config{Enabled: true, Address: addr, Prefix: "jobdeck"})
	require.NoError(t, err)
	defer client.Close()

	client.Timing("job.duration", 1500*time.Millisecond, nil)

	assert.Equal(t, "jobdeck.job.duration:1500|ms", receiveLine(t, lines))
}

func TestClientWithoutPrefix(t *testing.T) {
	addr, lines := newUDPListener(t)

	client, err := NewClient(Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	defer client.Close()

	client.Count("hits", 3, nil)

	assert.Equal(t, "hits:3|c", receiveLine(t, lines))
}

func TestClientDisabled(t *testing.T) {
	client, err := NewClient(Config{Enabled: false, Address: "127.0.0.1:1"})
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	// Drops silently.
	client.Count("hits", 1, nil)
	client.Timing("lat", time.Second, nil)
	assert.NoError(t, client.Close())
}

func TestNilClientIsSafe(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	client.Count("hits", 1, nil)
	client.Timing("lat", time.Second, nil)
	assert.NoError(t, client.Close())
}

func TestClientEmptyMetricNameDropped(t *testing.T) {
	addr, lines := newUDPListener(t)

	client, err := NewClient(Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	defer client.Close()

	client.Count("  ", 1, nil)
	client.Count("after", 1, nil)

	// Only the valid metric arrives.
	assert.Equal(t, "after:1|c", receiveLine(t, lines))
}
