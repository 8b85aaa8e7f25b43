//go:build !integration

package cache

import (
	"context"
	"net"
	"os"
	"testing"
	"time"
)

// redisAddr uses REDIS_ADDR or a local Redis; the integration build starts a container instead.
func redisAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	d := net.Dialer{Timeout: time.Second}
	conn, err := d.DialContext(context.Background(), "tcp", addr)
	if err != nil {
		t.Skipf("Redis not available at %s, run with -tags integration to use a container", addr)
	}
	_ = conn.Close()
	return addr
}
