package game

import "time"

const (
	GameChronoFlip = "chronoflip"
	GameRPS        = "rps"
)

// GameRecord is one append-only row per completed attempt. Rows are
// never mutated or deleted; aggregates live in user_stats.
type GameRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         *uint     `json:"userId"`
	GameType       string    `gorm:"not null;default:chronoflip" json:"gameType"`
	Symbol         *string   `json:"symbol"`
	UserGuess      *string   `json:"userGuess"`
	OpponentChoice *string   `json:"opponentChoice"`
	IsCorrect      *bool     `json:"isCorrect"`
	Result         *string   `json:"result"`
	AmountStaked   int       `gorm:"default:0" json:"amountStaked"`
	AmountWon      int       `gorm:"default:0" json:"amountWon"`
	Streak         int       `gorm:"not null;default:0" json:"streak"`
	Timestamp      time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (GameRecord) TableName() string {
	return "game_records"
}
