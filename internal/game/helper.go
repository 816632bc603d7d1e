package game

// IsMark reports whether m is one of the two player marks.
func (m PlayerMark) IsMark() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark.
func (m PlayerMark) Opponent() PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (m PlayerMark) String() string {
	return string(m)
}
