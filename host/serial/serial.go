package serial

import (
	"io"
)

// Port is the keyboard's debug console as seen by the host.
// Implementations: native serial (github.com/tarm/serial) and, in tests,
// any io.ReadWriteCloser wrapped with NopFlush.
type Port interface {
	io.ReadWriteCloser

	// Flush discards or drains any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the console settings the firmware uses
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}

type nopFlush struct {
	io.ReadWriteCloser
}

func (nopFlush) Flush() error { return nil }

// NopFlush adapts rwc to Port with a no-op Flush
func NopFlush(rwc io.ReadWriteCloser) Port {
	return nopFlush{rwc}
}
