// Package protocol frames keyboard trace events for the debug console.
// Frames reuse the Klipper block layout: length, sequence, payload, CRC16, sync.
package protocol

// Version of the trace frame format
const Version = "1"

// Frame constants
const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10

	// MessageMax is the scratch buffer size (several frames)
	MessageMax = 512

	// Message sequence masks
	MessageSeqMask = 0x0F
)
