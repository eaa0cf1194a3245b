package stats

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anthonyushie/lightning-rps/internal/apperrors"
	"github.com/Anthonyushie/lightning-rps/pkg/db"
)

type StatsRepository interface {
	GetUserStats(userID int) (*UserStats, error)
	UpsertStats(update *StatsUpdate) (*UserStats, error)
	GetLeaderboard(limit int) ([]LeaderboardEntry, error)
}

// DBStatsRepository persists aggregates through the shared gorm connection.
type DBStatsRepository struct{}

func NewDBStatsRepository() *DBStatsRepository {
	return &DBStatsRepository{}
}

func (r *DBStatsRepository) GetUserStats(userID int) (*UserStats, error) {
	var row UserStats
	result := db.DB.Where("user_id = ?", userID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "error fetching user stats", result.Error)
	}
	return &row, nil
}

// UpsertStats runs the read-modify-write inside one transaction with the
// row locked, so two submissions for the same user serialize instead of
// overwriting each other.
func (r *DBStatsRepository) UpsertStats(update *StatsUpdate) (*UserStats, error) {
	var row UserStats
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing UserStats
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", update.UserID).
			First(&existing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				row = newStats(update, time.Now())
				return tx.Create(&row).Error
			}
			return result.Error
		}

		row = applyUpdate(existing, update, time.Now())
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "error updating user stats", err)
	}
	return &row, nil
}

// GetLeaderboard joins aggregates to users for the username annotation.
// Ties on best streak break on user id ascending so the order is stable.
func (r *DBStatsRepository) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	entries := []LeaderboardEntry{}
	if limit <= 0 {
		return entries, nil
	}

	err := db.DB.Table("user_stats").
		Select("user_stats.id, user_stats.user_id, user_stats.best_streak, user_stats.total_guesses, user_stats.correct_guesses, user_stats.last_played, users.username").
		Joins("INNER JOIN users ON users.id = user_stats.user_id").
		Order("user_stats.best_streak DESC, user_stats.user_id ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching leaderboard", err)
	}

	return entries, nil
}
