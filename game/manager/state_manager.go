package manager

import (
	"github.com/google/uuid"
)

// StateManager tracks run statistics across resets within one process.
// Nothing is written to disk; the front-ends read it for the "best"
// display.
type StateManager struct {
	sessionID    string
	gamesPlayed  int
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		sessionID: uuid.New().String(),
	}
}

// SessionID identifies this process's run, for window titles and logs.
func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

// RecordGame stores the final score of a finished game.
func (sm *StateManager) RecordGame(score int) {
	sm.gamesPlayed++
	sm.scoreHistory = append(sm.scoreHistory, score)
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// ScoreHistory returns the final scores in game order. Callers must
// not mutate the returned slice.
func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}
