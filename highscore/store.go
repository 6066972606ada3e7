// Package highscore persists the best score of each game.
package highscore

import "sync"

// Store reads and writes high scores keyed by game identity. A game with no
// recorded score loads as 0.
type Store interface {
	Load(game string) (int, error)
	Save(game string, score int) error
}

// Memory is a Store that keeps scores in process memory.
type Memory struct {
	mu     sync.Mutex
	scores map[string]int
}

func NewMemory() *Memory {
	return &Memory{scores: make(map[string]int)}
}

func (m *Memory) Load(game string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[game], nil
}

func (m *Memory) Save(game string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[game] = score
	return nil
}
