package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestApplyUpdate_BestStreakOnlyGrows(t *testing.T) {
	existing := UserStats{UserID: 1, BestStreak: 5, TotalGuesses: 10, CorrectGuesses: 7}
	update := &StatsUpdate{
		UserID:         1,
		BestStreak:     intPtr(3),
		TotalGuesses:   intPtr(12),
		CorrectGuesses: intPtr(8),
	}

	merged := applyUpdate(existing, update, time.Now())
	assert.Equal(t, 5, merged.BestStreak)
	assert.Equal(t, 12, merged.TotalGuesses)
	assert.Equal(t, 8, merged.CorrectGuesses)
}

func TestApplyUpdate_HigherStreakWins(t *testing.T) {
	existing := UserStats{UserID: 1, BestStreak: 5}
	merged := applyUpdate(existing, &StatsUpdate{UserID: 1, BestStreak: intPtr(9)}, time.Now())
	assert.Equal(t, 9, merged.BestStreak)
}

func TestApplyUpdate_OmittedFieldsKeepExisting(t *testing.T) {
	existing := UserStats{UserID: 1, BestStreak: 4, TotalGuesses: 20, CorrectGuesses: 11}
	merged := applyUpdate(existing, &StatsUpdate{UserID: 1}, time.Now())
	assert.Equal(t, 4, merged.BestStreak)
	assert.Equal(t, 20, merged.TotalGuesses)
	assert.Equal(t, 11, merged.CorrectGuesses)
}

func TestApplyUpdate_MaxOverAnyOrder(t *testing.T) {
	// Whatever order the submissions arrive in, the stored best streak
	// ends up as the maximum ever submitted.
	submissions := []int{3, 9, 1, 7, 9, 0}
	orders := [][]int{
		{0, 1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1, 0},
		{2, 0, 5, 1, 3, 4},
	}
	for _, order := range orders {
		row := UserStats{UserID: 1}
		for _, i := range order {
			row = applyUpdate(row, &StatsUpdate{UserID: 1, BestStreak: intPtr(submissions[i])}, time.Now())
		}
		assert.Equal(t, 9, row.BestStreak)
	}
}

func TestApplyUpdate_SetsLastPlayed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	merged := applyUpdate(UserStats{UserID: 1}, &StatsUpdate{UserID: 1}, now)
	assert.Equal(t, now, merged.LastPlayed)
}

func TestNewStats_DefaultsForUnsetFields(t *testing.T) {
	now := time.Now()
	row := newStats(&StatsUpdate{UserID: 7}, now)
	assert.Equal(t, uint(7), row.UserID)
	assert.Equal(t, 0, row.BestStreak)
	assert.Equal(t, 0, row.TotalGuesses)
	assert.Equal(t, 0, row.CorrectGuesses)
}

func TestStatsService_UpsertStats_RequiresUserID(t *testing.T) {
	mockRepo := &StatsRepositoryMock{}
	service := NewStatsService(mockRepo)

	_, err := service.UpsertStats(&StatsUpdate{})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "UpsertStats")
}

func TestStatsService_GetUserStats_NotFound(t *testing.T) {
	mockRepo := &StatsRepositoryMock{}
	service := NewStatsService(mockRepo)

	mockRepo.On("GetUserStats", 42).Return(nil, nil)

	_, err := service.GetUserStats(42)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetLeaderboard_NegativeLimit(t *testing.T) {
	mockRepo := &StatsRepositoryMock{}
	service := NewStatsService(mockRepo)

	mockRepo.On("GetLeaderboard", 0).Return([]LeaderboardEntry{}, nil)

	entries, err := service.GetLeaderboard(-5)
	require.NoError(t, err)
	assert.Empty(t, entries)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetGlobalStats_Empty(t *testing.T) {
	mockRepo := &StatsRepositoryMock{}
	service := NewStatsService(mockRepo)

	mockRepo.On("GetLeaderboard", 100).Return([]LeaderboardEntry{}, nil)

	global, err := service.GetGlobalStats()
	require.NoError(t, err)
	assert.Equal(t, 0, global.TotalPlayers)
	assert.Equal(t, 0, global.TotalGames)
	assert.Equal(t, 0, global.TotalCorrect)
	assert.Equal(t, 0, global.TopStreak)
	assert.Equal(t, 0, global.AverageAccuracy)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetGlobalStats_SingleEntry(t *testing.T) {
	mockRepo := &StatsRepositoryMock{}
	service := NewStatsService(mockRepo)

	mockRepo.On("GetLeaderboard", 100).Return([]LeaderboardEntry{
		{UserID: 1, Username: "alice", BestStreak: 9, TotalGuesses: 20, CorrectGuesses: 15},
	}, nil)

	global, err := service.GetGlobalStats()
	require.NoError(t, err)
	assert.Equal(t, 1, global.TotalPlayers)
	assert.Equal(t, 20, global.TotalGames)
	assert.Equal(t, 15, global.TotalCorrect)
	assert.Equal(t, 9, global.TopStreak)
	assert.Equal(t, 75, global.AverageAccuracy)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_GetGlobalStats_ZeroGuessesPlayer(t *testing.T) {
	mockRepo := &StatsRepositoryMock{}
	service := NewStatsService(mockRepo)

	// A player with no guesses must not divide by zero and counts as 0%.
	mockRepo.On("GetLeaderboard", 100).Return([]LeaderboardEntry{
		{UserID: 1, BestStreak: 4, TotalGuesses: 10, CorrectGuesses: 10},
		{UserID: 2, BestStreak: 0, TotalGuesses: 0, CorrectGuesses: 0},
	}, nil)

	global, err := service.GetGlobalStats()
	require.NoError(t, err)
	assert.Equal(t, 2, global.TotalPlayers)
	assert.Equal(t, 10, global.TotalGames)
	assert.Equal(t, 4, global.TopStreak)
	assert.Equal(t, 50, global.AverageAccuracy)
	mockRepo.AssertExpectations(t)
}
