// Package downsample is the client side of the image-processing service's
// TCP protocol. One request per connection:
//
//	DOWN-RESOLUTE <source_path> <dest_path>
//
// The reply is a status string ("OK" on success).
package downsample

import (
	"context"
	"fmt"
	"net"
	"strings"
)

// Client issues down-resolution requests to the image-processing service.
type Client struct {
	addr   string
	dialer net.Dialer
}

func NewClient(addr string) *Client {
	return &Client{addr: addr}
}

// DownResolute asks the service to produce a down-resoluted copy of src at
// dst. An error is returned when the service is unreachable or replies with
// anything other than "OK"; callers treat both as best-effort failures.
func (c *Client) DownResolute(ctx context.Context, src, dst string) error {
	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := fmt.Fprintf(conn, "DOWN-RESOLUTE %s %s", src, dst); err != nil {
		return fmt.Errorf("send command: %w", err)
	}

	buf := make([]byte, 256)
	n, err := conn.Read(buf)
	if err != nil {
		return fmt.Errorf("read reply: %w", err)
	}

	reply := strings.TrimSpace(string(buf[:n]))
	if reply != "OK" {
		return fmt.Errorf("down-resolution rejected: %s", reply)
	}
	return nil
}
