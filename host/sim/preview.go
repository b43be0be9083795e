package sim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"keyglow/core"
)

// PreviewRows is the physical key arrangement of the 75% ANSI board, top row first
var PreviewRows = [][]core.Keycode{
	{core.KC_ESC, core.KC_F1, core.KC_F2, core.KC_F3, core.KC_F4, core.KC_F5, core.KC_F6,
		core.KC_F7, core.KC_F8, core.KC_F9, core.KC_F10, core.KC_F11, core.KC_F12, core.KC_PSCR, core.KC_DEL},
	{core.KC_GRV, core.KC_1, core.KC_2, core.KC_3, core.KC_4, core.KC_5, core.KC_6, core.KC_7,
		core.KC_8, core.KC_9, core.KC_0, core.KC_MINS, core.KC_EQL, core.KC_BSPC, core.KC_PGUP},
	{core.KC_TAB, core.KC_Q, core.KC_W, core.KC_E, core.KC_R, core.KC_T, core.KC_Y, core.KC_U,
		core.KC_I, core.KC_O, core.KC_P, core.KC_LBRC, core.KC_RBRC, core.KC_BSLS, core.KC_PGDN},
	{core.KC_CAPS, core.KC_A, core.KC_S, core.KC_D, core.KC_F, core.KC_G, core.KC_H, core.KC_J,
		core.KC_K, core.KC_L, core.KC_SCLN, core.KC_QUOT, core.KC_ENT, core.KC_END},
	{core.KC_LSFT, core.KC_Z, core.KC_X, core.KC_C, core.KC_V, core.KC_B, core.KC_N, core.KC_M,
		core.KC_COMM, core.KC_DOT, core.KC_SLSH, core.KC_RSFT, core.KC_UP},
	{core.KC_LCTL, core.KC_LGUI, core.KC_LALT, core.KC_SPC, core.KC_RALT, core.KC_FN, core.KC_RCTL,
		core.KC_LEFT, core.KC_DOWN, core.KC_RGHT},
}

var cellStyle = lipgloss.NewStyle().Width(3)

func cell(c core.RGB, label string) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	fg := "#ffffff"
	if int(c.R)+int(c.G)+int(c.B) > 384 {
		fg = "#000000"
	}
	return cellStyle.
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(label)
}

func keyLabel(kc core.Keycode) string {
	name := strings.TrimPrefix(core.KeycodeString(kc), "KC_")
	if len(name) > 3 {
		name = name[:3]
	}
	return name
}

func sideColumn(b *Board, idx []uint8) string {
	cells := make([]string, 0, len(idx))
	for _, i := range idx {
		cells = append(cells, cell(b.leds[i], ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

// Preview renders the last frame as a colored key map flanked by the side bars
func Preview(b *Board) string {
	layout := b.layout

	rows := make([]string, 0, len(PreviewRows))
	for _, row := range PreviewRows {
		cells := make([]string, 0, len(row))
		for _, kc := range row {
			idx, ok := layout.LED(kc)
			if !ok {
				continue
			}
			cells = append(cells, cell(b.leds[idx], keyLabel(kc)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	keys := lipgloss.NewStyle().Padding(1, 1).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sideColumn(b, layout.LeftSide),
		keys,
		sideColumn(b, layout.RightSide))
}
