//go:build rp2040

package main

import (
	"machine"

	"keyglow/core"
	"keyglow/protocol"
)

var (
	traceOut = protocol.NewScratchOutput()
	traceSeq uint8

	consoleErrors uint32
)

// InitConsole configures the USB CDC console and routes the trace and
// debug output to it
func InitConsole() {
	if err := machine.Serial.Configure(machine.UARTConfig{}); err != nil {
		return
	}

	core.SetTraceSink(sendTrace)
	core.SetDebugWriter(func(s string) {
		consoleWrite([]byte(s))
		consoleWrite([]byte("\r\n"))
	})
}

// sendTrace frames one event for the host monitor
func sendTrace(evt core.TraceEvent) {
	traceOut.Reset()
	protocol.EncodeTraceFrame(traceOut, traceSeq, protocol.TraceRecord{
		Kind:   evt.Kind,
		Key:    uint16(evt.Key),
		Seq:    evt.Seq,
		Value1: evt.Value1,
		Value2: evt.Value2,
	})
	traceSeq = (traceSeq + 1) & protocol.MessageSeqMask
	consoleWrite(traceOut.Result())
}

func consoleWrite(data []byte) {
	written := 0
	for written < len(data) {
		n, err := machine.Serial.Write(data[written:])
		if err != nil || n == 0 {
			// Host not listening; drop the rest
			consoleErrors++
			return
		}
		written += n
	}
}
