package viewer

// Mode selects how the level is drawn.
type Mode int

const (
	// ModeTiles draws bare floor tiles.
	ModeTiles Mode = iota
	// ModeOutline marks room corners and corridor tiles.
	ModeOutline
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeTiles:
		return "tiles"
	case ModeOutline:
		return "outline"
	default:
		return "unknown"
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	if m == ModeTiles {
		return ModeOutline
	}
	return ModeTiles
}
