package game

import (
	"github.com/Anthonyushie/lightning-rps/internal/apperrors"
	"github.com/Anthonyushie/lightning-rps/pkg/db"
)

type GameRepository interface {
	RecordGame(record *GameRecord) (*GameRecord, error)
	GetGameHistory(userID, limit int) ([]GameRecord, error)
}

// DBGameRepository persists game records through the shared gorm connection.
type DBGameRepository struct{}

func NewDBGameRepository() *DBGameRepository {
	return &DBGameRepository{}
}

func (r *DBGameRepository) RecordGame(record *GameRecord) (*GameRecord, error) {
	if err := db.DB.Create(record).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error recording game", err)
	}
	return record, nil
}

func (r *DBGameRepository) GetGameHistory(userID, limit int) ([]GameRecord, error) {
	records := []GameRecord{}
	if limit <= 0 {
		return records, nil
	}

	err := db.DB.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching game history", err)
	}

	return records, nil
}
