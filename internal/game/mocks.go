package game

import (
	"github.com/stretchr/testify/mock"
)

type GameRepositoryMock struct {
	mock.Mock
}

func (m *GameRepositoryMock) RecordGame(record *GameRecord) (*GameRecord, error) {
	args := m.Called(record)
	var rec *GameRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*GameRecord)
	}
	return rec, args.Error(1)
}

func (m *GameRepositoryMock) GetGameHistory(userID, limit int) ([]GameRecord, error) {
	args := m.Called(userID, limit)
	var records []GameRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]GameRecord)
	}
	return records, args.Error(1)
}
