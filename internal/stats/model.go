package stats

import "time"

// UserStats is the single mutable aggregate row per user. Game records
// stay append-only; this row is the only thing rewritten in place.
type UserStats struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"userId"`
	BestStreak     int       `gorm:"not null;default:0" json:"bestStreak"`
	TotalGuesses   int       `gorm:"not null;default:0" json:"totalGuesses"`
	CorrectGuesses int       `gorm:"not null;default:0" json:"correctGuesses"`
	LastPlayed     time.Time `json:"lastPlayed"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

// StatsUpdate is the wire shape of a stats submission. Pointer fields
// distinguish "omitted" from an explicit zero: omitted totals keep the
// stored values, an omitted best streak counts as zero.
type StatsUpdate struct {
	UserID         uint `json:"userId"`
	BestStreak     *int `json:"bestStreak"`
	TotalGuesses   *int `json:"totalGuesses"`
	CorrectGuesses *int `json:"correctGuesses"`
}

type LeaderboardEntry struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	BestStreak     int       `json:"bestStreak"`
	TotalGuesses   int       `json:"totalGuesses"`
	CorrectGuesses int       `json:"correctGuesses"`
	LastPlayed     time.Time `json:"lastPlayed"`
	Username       string    `json:"username"`
}

type GlobalStats struct {
	TotalPlayers    int `json:"totalPlayers"`
	TotalGames      int `json:"totalGames"`
	TotalCorrect    int `json:"totalCorrect"`
	TopStreak       int `json:"topStreak"`
	AverageAccuracy int `json:"averageAccuracy"`
}

// applyUpdate merges a submission into an existing row. Best streak only
// ever grows; callers send cumulative totals, so those overwrite when
// present.
func applyUpdate(existing UserStats, update *StatsUpdate, now time.Time) UserStats {
	incoming := 0
	if update.BestStreak != nil {
		incoming = *update.BestStreak
	}
	if incoming > existing.BestStreak {
		existing.BestStreak = incoming
	}
	if update.TotalGuesses != nil {
		existing.TotalGuesses = *update.TotalGuesses
	}
	if update.CorrectGuesses != nil {
		existing.CorrectGuesses = *update.CorrectGuesses
	}
	existing.LastPlayed = now
	return existing
}

// newStats builds the first row for a user from a submission.
func newStats(update *StatsUpdate, now time.Time) UserStats {
	row := UserStats{
		UserID:     update.UserID,
		LastPlayed: now,
	}
	if update.BestStreak != nil {
		row.BestStreak = *update.BestStreak
	}
	if update.TotalGuesses != nil {
		row.TotalGuesses = *update.TotalGuesses
	}
	if update.CorrectGuesses != nil {
		row.CorrectGuesses = *update.CorrectGuesses
	}
	return row
}
