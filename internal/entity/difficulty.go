package entity

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty never fails: anything unrecognized keeps the game playable on easy.
func ParseDifficulty(raw string) Difficulty {
	switch level := Difficulty(strings.ToLower(strings.TrimSpace(raw))); level {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return level
	default:
		return DifficultyEasy
	}
}
