package stats

import (
	"github.com/stretchr/testify/mock"
)

type StatsRepositoryMock struct {
	mock.Mock
}

func (m *StatsRepositoryMock) GetUserStats(userID int) (*UserStats, error) {
	args := m.Called(userID)
	var row *UserStats
	if args.Get(0) != nil {
		row = args.Get(0).(*UserStats)
	}
	return row, args.Error(1)
}

func (m *StatsRepositoryMock) UpsertStats(update *StatsUpdate) (*UserStats, error) {
	args := m.Called(update)
	var row *UserStats
	if args.Get(0) != nil {
		row = args.Get(0).(*UserStats)
	}
	return row, args.Error(1)
}

func (m *StatsRepositoryMock) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	args := m.Called(limit)
	var entries []LeaderboardEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]LeaderboardEntry)
	}
	return entries, args.Error(1)
}
