// Package monitor decodes the keyboard's trace frames from its debug console.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"keyglow/core"
	"keyglow/protocol"
)

const (
	readChunkSize = 256
	fifoSize      = protocol.MessageMax * 4
)

// Stats counts what a session has seen so far
type Stats struct {
	Frames  uint32
	Dropped uint32
	Gaps    uint32
}

// Monitor reads trace frames from a console and logs each event
type Monitor struct {
	src     io.Reader
	log     *zap.Logger
	session uuid.UUID

	fifo    *protocol.FifoBuffer
	decoder *protocol.FrameDecoder

	handler func(core.TraceEvent)
}

// New creates a monitor on src with a fresh session id
func New(src io.Reader, log *zap.Logger) *Monitor {
	session := uuid.New()
	return &Monitor{
		src:     src,
		log:     log.With(zap.String("session", session.String())),
		session: session,
		fifo:    protocol.NewFifoBuffer(fifoSize),
		decoder: protocol.NewFrameDecoder(),
	}
}

// Session returns the id attached to every log line of this run
func (m *Monitor) Session() uuid.UUID {
	return m.session
}

// OnEvent registers fn to receive each decoded event after it is logged
func (m *Monitor) OnEvent(fn func(core.TraceEvent)) {
	m.handler = fn
}

// Stats returns the decoder counters
func (m *Monitor) Stats() Stats {
	return Stats{
		Frames:  m.decoder.Frames,
		Dropped: m.decoder.Dropped,
		Gaps:    m.decoder.Gaps,
	}
}

// Run reads until the source ends or ctx is cancelled. End of input is not
// an error. The reader goroutine stays blocked in Read until the caller
// closes the source.
func (m *Monitor) Run(ctx context.Context) error {
	chunks := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		for {
			buf := make([]byte, readChunkSize)
			n, err := m.src.Read(buf)
			if n > 0 {
				select {
				case chunks <- buf[:n]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	m.log.Info("monitor started")

	for {
		select {
		case <-ctx.Done():
			m.logStats()
			return nil
		case chunk := <-chunks:
			m.feed(chunk)
		case err := <-readErr:
			m.logStats()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read console: %w", err)
		}
	}
}

func (m *Monitor) feed(data []byte) {
	for len(data) > 0 {
		n := m.fifo.Write(data)
		data = data[n:]
		m.decoder.Decode(m.fifo, m.handle)

		// A full buffer with no frame boundary is garbage
		if n == 0 && m.fifo.Free() == 0 {
			m.log.Warn("discarding unframed input", zap.Int("bytes", m.fifo.Available()))
			m.fifo.Reset()
		}
	}
}

func (m *Monitor) handle(rec protocol.TraceRecord) {
	evt := core.TraceEvent{
		Kind:   rec.Kind,
		Key:    core.Keycode(rec.Key),
		Seq:    rec.Seq,
		Value1: rec.Value1,
		Value2: rec.Value2,
	}

	m.log.Info(core.TraceKindName(evt.Kind), Fields(evt)...)

	if m.handler != nil {
		m.handler(evt)
	}
}

func (m *Monitor) logStats() {
	s := m.Stats()
	m.log.Info("monitor stopped",
		zap.Uint32("frames", s.Frames),
		zap.Uint32("dropped", s.Dropped),
		zap.Uint32("gaps", s.Gaps))
}

// Fields renders evt as structured log fields
func Fields(evt core.TraceEvent) []zap.Field {
	fields := []zap.Field{zap.Uint32("seq", evt.Seq)}
	if evt.Key != core.KC_NO {
		fields = append(fields, zap.String("key", core.KeycodeString(evt.Key)))
	}

	switch evt.Kind {
	case core.EvtPostInit:
		fields = append(fields, zap.Stringer("mode", core.LightingMode(evt.Value1)))
	case core.EvtModeChange:
		fields = append(fields,
			zap.Stringer("from", core.LightingMode(evt.Value1)),
			zap.Stringer("to", core.LightingMode(evt.Value2)))
	case core.EvtEncoder:
		fields = append(fields,
			zap.Stringer("action", core.EncoderAction(evt.Value1)),
			zap.Bool("clockwise", evt.Value2 != 0))
	case core.EvtOverlayEnter:
		fields = append(fields,
			zap.Uint32("layer", evt.Value1),
			zap.String("hsv", hsvString(core.UnpackHSV(evt.Value2))))
	case core.EvtOverlayExit:
		fields = append(fields, zap.String("hsv", hsvString(core.UnpackHSV(evt.Value2))))
	case core.EvtCommit:
		fields = append(fields,
			zap.Uint32("effect_mode", evt.Value1),
			zap.String("hsv", hsvString(core.UnpackHSV(evt.Value2))))
	case core.EvtSOCD:
		fields = append(fields,
			zap.Bool("pressed", evt.Value1 != 0),
			zap.String("active", core.KeycodeString(core.Keycode(evt.Value2))))
	case core.EvtToggle:
		fields = append(fields, zap.Bool("enabled", evt.Value1 != 0))
	default:
		fields = append(fields, zap.Uint32("v1", evt.Value1), zap.Uint32("v2", evt.Value2))
	}
	return fields
}

func hsvString(c core.HSV) string {
	return fmt.Sprintf("%d/%d/%d", c.H, c.S, c.V)
}
