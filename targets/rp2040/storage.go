//go:build rp2040

package main

import (
	"machine"

	"keyglow/core"
)

const storageMagic = 0x4B

// storedEffect is the effect state written by the save chord
type storedEffect struct {
	Mode  uint8
	Speed uint8
	HSV   core.HSV
}

var defaultEffect = storedEffect{Mode: 0, Speed: 128, HSV: core.HSV{H: 0, S: 255, V: 255}}

// loadEffect reads the saved effect from the first flash block, or the
// defaults when nothing valid is stored
func loadEffect() storedEffect {
	var rec [6]byte
	if _, err := machine.Flash.ReadAt(rec[:], 0); err != nil || rec[0] != storageMagic {
		return defaultEffect
	}
	return storedEffect{
		Mode:  rec[1],
		Speed: rec[2],
		HSV:   core.HSV{H: rec[3], S: rec[4], V: rec[5]},
	}
}

func saveEffect(e storedEffect) {
	rec := []byte{storageMagic, e.Mode, e.Speed, e.HSV.H, e.HSV.S, e.HSV.V}
	if err := machine.Flash.EraseBlocks(0, 1); err != nil {
		core.DebugPrintln("[STORAGE] erase failed")
		return
	}
	if _, err := machine.Flash.WriteAt(rec, 0); err != nil {
		core.DebugPrintln("[STORAGE] write failed")
	}
}
