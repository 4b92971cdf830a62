package window

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/magic-lab/input"
)

// chord is a key plus the modifiers that must be held with it
type chord struct {
	Key   ebiten.Key
	Shift bool
	Ctrl  bool
}

var letterKeys = [26]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = [10]ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

var specialKeys = map[tcell.Key]chord{
	tcell.KeyEscape: {Key: ebiten.KeyEscape},
	tcell.KeyCtrlC:  {Key: ebiten.KeyC, Ctrl: true},
	tcell.KeyCtrlQ:  {Key: ebiten.KeyQ, Ctrl: true},
	tcell.KeyLeft:   {Key: ebiten.KeyArrowLeft},
	tcell.KeyRight:  {Key: ebiten.KeyArrowRight},
	tcell.KeyUp:     {Key: ebiten.KeyArrowUp},
	tcell.KeyDown:   {Key: ebiten.KeyArrowDown},
}

func runeChord(r rune) (chord, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return chord{Key: letterKeys[r-'a']}, true
	case r >= 'A' && r <= 'Z':
		return chord{Key: letterKeys[r-'A'], Shift: true}, true
	case r >= '0' && r <= '9':
		return chord{Key: digitKeys[r-'0']}, true
	}
	switch r {
	case ' ':
		return chord{Key: ebiten.KeySpace}, true
	case '=':
		return chord{Key: ebiten.KeyEqual}, true
	case '+':
		return chord{Key: ebiten.KeyEqual, Shift: true}, true
	case '-':
		return chord{Key: ebiten.KeyMinus}, true
	case '_':
		return chord{Key: ebiten.KeyMinus, Shift: true}, true
	}
	return chord{}, false
}

// chordTable translates a terminal key table into window chords
// Keys with no window equivalent are dropped
func chordTable(t *input.KeyTable) map[chord]input.KeyEntry {
	out := make(map[chord]input.KeyEntry, len(t.Runes)+len(t.SpecialKeys)+2)
	for k, e := range t.SpecialKeys {
		if c, ok := specialKeys[k]; ok {
			out[c] = e
		}
	}
	for r, e := range t.Runes {
		if c, ok := runeChord(r); ok {
			out[c] = e
		}
	}
	out[chord{Key: ebiten.KeyNumpadAdd}] = input.KeyEntry{Behavior: input.BehaviorAdjust, Sign: 1}
	out[chord{Key: ebiten.KeyNumpadSubtract}] = input.KeyEntry{Behavior: input.BehaviorAdjust, Sign: -1}
	return out
}
