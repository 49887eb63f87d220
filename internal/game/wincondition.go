package game

// WinMonitor fires once per session when a player's kill count reaches the
// limit.
type WinMonitor struct {
	limit    int
	gameOver bool
}

func NewWinMonitor(limit int) *WinMonitor {
	return &WinMonitor{limit: limit}
}

// Check is called after every kill increment. It returns true exactly once:
// the first time any player reaches the limit.
func (m *WinMonitor) Check(p *Player) bool {
	if m.gameOver || p == nil || p.Kills < m.limit {
		return false
	}
	m.gameOver = true
	return true
}

func (m *WinMonitor) GameOver() bool {
	return m.gameOver
}

// Reset re-arms the monitor for a new session.
func (m *WinMonitor) Reset() {
	m.gameOver = false
}
