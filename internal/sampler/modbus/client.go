// internal/sampler/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// DefaultPort is the registered Modbus TCP port.
const DefaultPort = "502"

// ErrConnect wraps every dial failure.
var ErrConnect = errors.New("modbus client: connect failed")

// Client is the connection handle for one run.
// It owns a single TCP connection; no retries, no pooling.
type Client struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client

	closeOnce sync.Once
}

// Config is minimal transport config.
type Config struct {
	Address string
	UnitID  uint8
	Timeout time.Duration
}

// Endpoint returns address with the default Modbus port added when none is given.
func Endpoint(address string) string {
	if address == "" {
		return ""
	}
	if _, _, err := net.SplitHostPort(address); err == nil {
		return address
	}
	return net.JoinHostPort(address, DefaultPort)
}

// Dial creates a connected Modbus TCP client.
func Dial(cfg Config) (*Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("%w: address required", ErrConnect)
	}

	h := modbus.NewTCPClientHandler(Endpoint(cfg.Address))
	h.SlaveId = cfg.UnitID
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, h.Address, err)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the TCP connection.
// Idempotent; a failing close is returned once and never retried.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	var err error
	c.closeOnce.Do(func() {
		err = c.handler.Close()
	})
	return err
}

// ReadInputRegisters issues FC 4 and returns the registers in device order.
func (c *Client) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("modbus client: not connected")
	}
	if qty == 0 {
		return nil, nil
	}

	p, err := c.client.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(p)%2 != 0 {
		return nil, errors.New("modbus: read-registers byte count not even")
	}
	return unpackRegisters(p), nil
}

// ---- helpers (pure geometry) ----

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
