package parley

import (
	"context"
	"errors"
	"testing"
)

func TestStartSessionNotConnected(t *testing.T) {
	c := NewClient(DefaultConfig())
	_, err := c.StartSession("bob")
	if err == nil {
		t.Fatalf("expected error when not connected")
	}
	if !errors.Is(err, NewError(ErrorNotConnected, "")) {
		t.Fatalf("expected not_connected, got %v", err)
	}
	if c.Session() != nil {
		t.Fatalf("no session should be installed")
	}
}

func TestConnectEmptyURL(t *testing.T) {
	c := NewClient(DefaultConfig())
	err := c.Connect(testCtx())
	if err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if !errors.Is(err, NewError(ErrorInvalidConfig, "")) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestTrySendNotConnected(t *testing.T) {
	c := NewClient(DefaultConfig())
	if err := c.trySend("frame"); !errors.Is(err, NewError(ErrorNotConnected, "")) {
		t.Fatalf("expected not_connected, got %v", err)
	}
}

func TestTrySendBufferFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SendBuffer = 1
	c := NewClient(cfg)
	c.state = StateConnected // no write loop running, buffer never drains

	if err := c.trySend("one"); err != nil {
		t.Fatalf("first send should buffer: %v", err)
	}
	err := c.trySend("two")
	if !errors.Is(err, NewError(ErrorSend, "")) {
		t.Fatalf("expected send_error on full buffer, got %v", err)
	}
}

func TestConnectionStateString(t *testing.T) {
	cases := map[ConnectionState]string{
		StateDisconnected:   "disconnected",
		StateConnecting:     "connecting",
		StateConnected:      "connected",
		StateError:          "error",
		StateClosed:         "closed",
		ConnectionState(42): "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", state, got, want)
		}
	}
}

// testCtx returns an already-cancelled context for unit tests.
func testCtx() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
