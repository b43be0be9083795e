package protocol

import "testing"

func encodeFrames(recs ...TraceRecord) []byte {
	out := NewScratchOutput()
	for i, rec := range recs {
		EncodeTraceFrame(out, uint8(i), rec)
	}
	return append([]byte(nil), out.Result()...)
}

func TestTraceFrameLayout(t *testing.T) {
	frame := encodeFrames(TraceRecord{Kind: 4, Key: 0, Seq: 1, Value1: 1, Value2: 2})

	if int(frame[MessagePositionLen]) != len(frame) {
		t.Errorf("Length byte %d does not match frame size %d", frame[0], len(frame))
	}
	if frame[MessagePositionSeq] != MessageDest {
		t.Errorf("Expected sequence byte 0x10, got 0x%02X", frame[1])
	}
	if frame[len(frame)-1] != MessageValueSync {
		t.Error("Frame must end with the sync byte")
	}
}

func TestFrameDecoderRoundTrip(t *testing.T) {
	recs := []TraceRecord{
		{Kind: 1, Seq: 1, Value1: 1, Value2: 0x73FFFF},
		{Kind: 2, Key: 0x04, Seq: 2, Value1: 1, Value2: 0x07},
		{Kind: 9, Seq: 3, Value1: 5, Value2: 1},
		{Kind: 5, Key: 0x5F00, Seq: 0xFFFFFFFF, Value1: 1, Value2: 0},
	}

	fifo := NewFifoBuffer(256)
	fifo.Write(encodeFrames(recs...))

	var got []TraceRecord
	d := NewFrameDecoder()
	d.Decode(fifo, func(r TraceRecord) { got = append(got, r) })

	if len(got) != len(recs) {
		t.Fatalf("Expected %d records, got %d", len(recs), len(got))
	}
	for i := range recs {
		if got[i] != recs[i] {
			t.Errorf("Record %d: expected %+v, got %+v", i, recs[i], got[i])
		}
	}
	if fifo.Available() != 0 {
		t.Errorf("Expected all bytes consumed, %d left", fifo.Available())
	}
	if d.Frames != uint32(len(recs)) || d.Gaps != 0 {
		t.Errorf("Unexpected counters frames=%d gaps=%d", d.Frames, d.Gaps)
	}
}

func TestFrameDecoderPartialFrame(t *testing.T) {
	data := encodeFrames(TraceRecord{Kind: 4, Seq: 1, Value1: 1, Value2: 2})

	fifo := NewFifoBuffer(64)
	fifo.Write(data[:4])

	count := 0
	d := NewFrameDecoder()
	d.Decode(fifo, func(TraceRecord) { count++ })
	if count != 0 || fifo.Available() != 4 {
		t.Fatalf("Partial frame must wait, got count=%d available=%d", count, fifo.Available())
	}

	fifo.Write(data[4:])
	d.Decode(fifo, func(TraceRecord) { count++ })
	if count != 1 {
		t.Errorf("Expected frame after the rest arrived, got %d", count)
	}
}

func TestFrameDecoderResync(t *testing.T) {
	good := encodeFrames(TraceRecord{Kind: 4, Seq: 1}, TraceRecord{Kind: 4, Seq: 2})

	// Corrupt the first frame's CRC
	bad := append([]byte(nil), good...)
	firstLen := int(bad[0])
	bad[firstLen-2] ^= 0xFF

	stream := append([]byte{0x01, 0x02, 0x03}, bad...)

	fifo := NewFifoBuffer(256)
	fifo.Write(stream)

	var got []TraceRecord
	d := NewFrameDecoder()
	d.Decode(fifo, func(r TraceRecord) { got = append(got, r) })

	if len(got) != 1 || got[0].Seq != 2 {
		t.Fatalf("Expected only the second record after resync, got %+v", got)
	}
	if d.Dropped == 0 {
		t.Error("Expected dropped counter to advance")
	}
}

func TestFrameDecoderSequenceGap(t *testing.T) {
	out := NewScratchOutput()
	EncodeTraceFrame(out, 0, TraceRecord{Kind: 1, Seq: 1})
	EncodeTraceFrame(out, 2, TraceRecord{Kind: 1, Seq: 3})

	fifo := NewFifoBuffer(128)
	fifo.Write(out.Result())

	d := NewFrameDecoder()
	d.Decode(fifo, func(TraceRecord) {})
	if d.Gaps != 1 {
		t.Errorf("Expected one sequence gap, got %d", d.Gaps)
	}
}

func TestDecodeTracePayloadTrailingBytes(t *testing.T) {
	out := NewScratchOutput()
	for i := 0; i < 6; i++ {
		EncodeVLQUint(out, 1)
	}
	if _, err := DecodeTracePayload(out.Result()); err != ErrBadFrame {
		t.Errorf("Expected ErrBadFrame, got %v", err)
	}
}
