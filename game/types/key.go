package types

// KeyCode names the non-character keys the game understands.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	Key1
	Key2
)

// KeyEvent is a decoded key: either a raw code or a unicode rune.
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

func RawKey(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

func Unicode(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// IsRaw reports whether the event carries a key code rather than a rune.
func (k KeyEvent) IsRaw() bool {
	return k.Code != KeyNone
}
