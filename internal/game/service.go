package game

import (
	"github.com/Anthonyushie/lightning-rps/internal/apperrors"
)

type GameService struct {
	repo GameRepository
}

func NewGameService(repo GameRepository) *GameService {
	return &GameService{repo: repo}
}

// RecordGame appends one immutable row. It does not touch the aggregate
// stats; submitting those is a separate call the client owns.
func (s *GameService) RecordGame(record *GameRecord) (*GameRecord, error) {
	if record.GameType == "" {
		record.GameType = GameChronoFlip
	}
	if record.GameType != GameChronoFlip && record.GameType != GameRPS {
		return nil, apperrors.NewAppError(400, "unknown game type", nil)
	}

	return s.repo.RecordGame(record)
}

func (s *GameService) GetGameHistory(userID, limit int) ([]GameRecord, error) {
	if limit < 0 {
		limit = 0
	}
	return s.repo.GetGameHistory(userID, limit)
}
