package core

import "time"

// HighScoreStore persists the best score between runs.
type HighScoreStore interface {
	LoadHighScore(key string) (int, error)
	SaveHighScore(key string, score int, at time.Time) error
}

// memoryStore keeps the high score for the lifetime of the process.
type memoryStore struct {
	scores map[string]int
}

// NewMemoryStore returns a HighScoreStore that does not outlive the process.
func NewMemoryStore() HighScoreStore {
	return &memoryStore{scores: make(map[string]int)}
}

func (m *memoryStore) LoadHighScore(key string) (int, error) {
	return m.scores[key], nil
}

func (m *memoryStore) SaveHighScore(key string, score int, _ time.Time) error {
	if score > m.scores[key] {
		m.scores[key] = score
	}
	return nil
}
