// internal/sampler/modbus/client_test.go
package modbus

import (
	"errors"
	"net"
	"testing"
	"time"
)

func TestEndpoint_AddsDefaultPort(t *testing.T) {
	cases := map[string]string{
		"192.168.13.11":      "192.168.13.11:502",
		"192.168.13.11:5020": "192.168.13.11:5020",
		"tester.local":       "tester.local:502",
		"::1":                "[::1]:502",
		"[::1]:1502":         "[::1]:1502",
		"":                   "",
	}
	for in, want := range cases {
		if got := Endpoint(in); got != want {
			t.Fatalf("Endpoint(%q)=%q want %q", in, got, want)
		}
	}
}

func TestUnpackRegisters_BigEndian(t *testing.T) {
	got := unpackRegisters([]byte{0x40, 0x48, 0xF5, 0xC3})
	if len(got) != 2 || got[0] != 0x4048 || got[1] != 0xF5C3 {
		t.Fatalf("unexpected registers: %#v", got)
	}
}

func TestDial_Unreachable(t *testing.T) {
	// grab a free port, then release it so the dial is refused
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	_, err = Dial(Config{Address: addr, UnitID: 1, Timeout: 200 * time.Millisecond})
	if !errors.Is(err, ErrConnect) {
		t.Fatalf("expected ErrConnect, got %v", err)
	}
}

func TestDial_EmptyAddress(t *testing.T) {
	if _, err := Dial(Config{}); !errors.Is(err, ErrConnect) {
		t.Fatalf("expected ErrConnect, got %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err == nil {
			defer conn.Close()
			buf := make([]byte, 1)
			_, _ = conn.Read(buf)
		}
	}()

	c, err := Dial(Config{Address: ln.Addr().String(), UnitID: 1, Timeout: time.Second})
	if err != nil {
		t.Fatalf("Dial err=%v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("first Close err=%v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close err=%v", err)
	}
}
