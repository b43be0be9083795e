package protocol

import "errors"

var (
	ErrBadFrame = errors.New("malformed trace frame")
	ErrBadCRC   = errors.New("trace frame CRC mismatch")
)

// TraceRecord is one keyboard state transition as carried on the wire
type TraceRecord struct {
	Kind   uint8
	Key    uint16
	Seq    uint32
	Value1 uint32
	Value2 uint32
}

// EncodeTraceFrame appends one framed record to output.
// seq is the 4-bit frame sequence; the record's own Seq travels in the payload.
func EncodeTraceFrame(output OutputBuffer, seq uint8, rec TraceRecord) {
	start := output.CurPosition()
	output.Output([]byte{0, MessageDest | (seq & MessageSeqMask)})

	EncodeVLQUint(output, uint32(rec.Kind))
	EncodeVLQUint(output, uint32(rec.Key))
	EncodeVLQUint(output, rec.Seq)
	EncodeVLQUint(output, rec.Value1)
	EncodeVLQUint(output, rec.Value2)

	// Patch the length, then append CRC and sync
	msgLen := output.CurPosition() - start + MessageTrailerSize
	output.Update(start+MessagePositionLen, byte(msgLen))
	crc := CRC16(output.DataSince(start))
	output.Output([]byte{byte(crc >> 8), byte(crc), MessageValueSync})
}

// DecodeTracePayload parses the payload between header and trailer
func DecodeTracePayload(payload []byte) (TraceRecord, error) {
	var fields [5]uint32
	for i := range fields {
		v, err := DecodeVLQUint(&payload)
		if err != nil {
			return TraceRecord{}, err
		}
		fields[i] = v
	}
	if len(payload) != 0 || fields[0] > 0xFF || fields[1] > 0xFFFF {
		return TraceRecord{}, ErrBadFrame
	}
	return TraceRecord{
		Kind:   uint8(fields[0]),
		Key:    uint16(fields[1]),
		Seq:    fields[2],
		Value1: fields[3],
		Value2: fields[4],
	}, nil
}

// FrameDecoder extracts trace frames from a byte stream and resynchronizes
// on the sync byte after corruption.
type FrameDecoder struct {
	synchronized bool
	nextSeq      uint8
	seqKnown     bool

	// Counters for the monitor's status line
	Frames  uint32
	Dropped uint32 // frames rejected or lost to corruption
	Gaps    uint32 // sequence discontinuities
}

// NewFrameDecoder creates a decoder that starts synchronized
func NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{synchronized: true}
}

// Decode consumes every complete frame in input and calls fn for each
// record. Incomplete trailing bytes are left in input for the next call.
func (d *FrameDecoder) Decode(input InputBuffer, fn func(TraceRecord)) {
	data := input.Data()
	consumed := 0

	for consumed < len(data) {
		rest := data[consumed:]

		if !d.synchronized {
			// Skip garbage up to and including the next sync byte
			syncPos := -1
			for i, b := range rest {
				if b == MessageValueSync {
					syncPos = i
					break
				}
			}
			if syncPos < 0 {
				consumed = len(data)
				break
			}
			consumed += syncPos + 1
			d.synchronized = true
			continue
		}

		// Skip leading sync bytes
		if rest[0] == MessageValueSync {
			consumed++
			continue
		}

		if len(rest) < MessageLengthMin {
			break
		}

		msgLen := int(rest[MessagePositionLen])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			d.desync()
			continue
		}

		seq := rest[MessagePositionSeq]
		if seq&^MessageSeqMask != MessageDest {
			d.desync()
			continue
		}

		// Wait for the full frame
		if len(rest) < msgLen {
			break
		}

		if rest[msgLen-MessageTrailerSync] != MessageValueSync {
			d.desync()
			continue
		}

		frameCRC := uint16(rest[msgLen-MessageTrailerCRC])<<8 |
			uint16(rest[msgLen-MessageTrailerCRC+1])
		if frameCRC != CRC16(rest[:msgLen-MessageTrailerSize]) {
			d.desync()
			continue
		}

		consumed += msgLen
		rec, err := DecodeTracePayload(rest[MessageHeaderSize : msgLen-MessageTrailerSize])
		if err != nil {
			d.Dropped++
			continue
		}

		d.trackSeq(seq & MessageSeqMask)
		d.Frames++
		fn(rec)
	}

	input.Pop(consumed)
}

func (d *FrameDecoder) desync() {
	d.synchronized = false
	d.seqKnown = false
	d.Dropped++
}

func (d *FrameDecoder) trackSeq(seq uint8) {
	if d.seqKnown && seq != d.nextSeq {
		d.Gaps++
	}
	d.nextSeq = (seq + 1) & MessageSeqMask
	d.seqKnown = true
}
