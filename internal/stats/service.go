package stats

import (
	"errors"
	"math"

	"github.com/Anthonyushie/lightning-rps/internal/apperrors"
)

// globalSampleSize caps how many leaderboard rows feed the global
// metrics. Matches the historical behaviour: with more players than
// this, the figures are over the top slice, not the whole table.
const globalSampleSize = 100

type StatsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) UpsertStats(update *StatsUpdate) (*UserStats, error) {
	if update.UserID == 0 {
		return nil, apperrors.NewAppError(400, "userId is required", nil)
	}

	return s.repo.UpsertStats(update)
}

func (s *StatsService) GetUserStats(userID int) (*UserStats, error) {
	row, err := s.repo.GetUserStats(userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.NewAppError(404, "user stats not found", errors.New("user stats not found"))
	}
	return row, nil
}

func (s *StatsService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit < 0 {
		limit = 0
	}
	return s.repo.GetLeaderboard(limit)
}

// GetGlobalStats derives leaderboard-wide metrics on demand from the top
// sample. Nothing is cached; every call recomputes from stored rows.
func (s *StatsService) GetGlobalStats() (*GlobalStats, error) {
	sample, err := s.repo.GetLeaderboard(globalSampleSize)
	if err != nil {
		return nil, err
	}

	global := &GlobalStats{TotalPlayers: len(sample)}
	if len(sample) == 0 {
		return global, nil
	}

	accuracySum := 0.0
	for _, entry := range sample {
		global.TotalGames += entry.TotalGuesses
		global.TotalCorrect += entry.CorrectGuesses
		divisor := entry.TotalGuesses
		if divisor < 1 {
			divisor = 1
		}
		accuracySum += float64(entry.CorrectGuesses) / float64(divisor)
	}

	global.TopStreak = sample[0].BestStreak
	global.AverageAccuracy = int(math.Round(accuracySum / float64(len(sample)) * 100))

	return global, nil
}
