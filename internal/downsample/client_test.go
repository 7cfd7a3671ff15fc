package downsample

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFakeService accepts one connection, records the request, and writes
// the given reply.
func startFakeService(t *testing.T, reply string) (addr string, got *string) {
	t.Helper()

	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	received := new(string)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, 1024)
		n, _ := conn.Read(buf)
		*received = string(buf[:n])
		_, _ = conn.Write([]byte(reply))
	}()

	return listener.Addr().String(), received
}

func TestDownResolute_OK(t *testing.T) {
	addr, got := startFakeService(t, "OK")

	c := NewClient(addr)
	err := c.DownResolute(context.Background(), "photos/a.jpeg", "thumbnails/a.jpeg")
	require.NoError(t, err)
	assert.Equal(t, "DOWN-RESOLUTE photos/a.jpeg thumbnails/a.jpeg", *got)
}

func TestDownResolute_Rejected(t *testing.T) {
	addr, _ := startFakeService(t, "FILE DOES NOT EXIST")

	c := NewClient(addr)
	err := c.DownResolute(context.Background(), "photos/a.jpeg", "thumbnails/a.jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FILE DOES NOT EXIST")
}

func TestDownResolute_Unreachable(t *testing.T) {
	// grab a port and close it so nothing is listening
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	c := NewClient(addr)
	assert.Error(t, c.DownResolute(context.Background(), "a", "b"))
}
