package widget

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Anthonyushie/lightning-rps/internal/game"
)

type MatchPhase string

const (
	MatchWaiting    MatchPhase = "waiting"
	MatchConnecting MatchPhase = "connecting"
	MatchPlaying    MatchPhase = "playing"
	MatchRevealing  MatchPhase = "revealing"
	MatchResult     MatchPhase = "result"
)

const (
	connectDelay = 2 * time.Second
	revealDelay  = 1500 * time.Millisecond

	startingBalance = 1000
	defaultStake    = 100
)

// Match is the simulated rock-paper-scissors engine. The opponent is a
// uniform random draw, and the balance is in-memory only, reset when the
// session goes away. No sats move anywhere.
type Match struct {
	mu             sync.Mutex
	id             string
	phase          MatchPhase
	stake          int
	balance        int
	playerChoice   game.Choice
	opponentChoice game.Choice
	result         string

	clock  Clock
	rng    *rand.Rand
	timers []Timer
}

func NewMatch(clock Clock, rng *rand.Rand) *Match {
	return &Match{
		id:      uuid.New().String()[:8],
		phase:   MatchWaiting,
		stake:   defaultStake,
		balance: startingBalance,
		clock:   clock,
		rng:     rng,
	}
}

func (m *Match) ID() string {
	return m.id
}

// SetStake adjusts the wager while no match is running. The stake can
// never exceed the current balance.
func (m *Match) SetStake(stake int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != MatchWaiting {
		return errors.New("cannot change stake mid-match")
	}
	if stake <= 0 || stake > m.balance {
		return errors.New("stake must be positive and within balance")
	}
	m.stake = stake
	return nil
}

// FindOpponent starts a match. The simulated opponent "joins" after a
// short delay, moving the session into the playing phase.
func (m *Match) FindOpponent() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != MatchWaiting {
		return errors.New("match already in progress")
	}

	m.phase = MatchConnecting
	m.playerChoice = ""
	m.opponentChoice = ""
	m.result = ""

	m.schedule(connectDelay, func() {
		if m.phase == MatchConnecting {
			m.phase = MatchPlaying
		}
	})
	return nil
}

// Play locks in the player's choice, draws the opponent's, and settles
// after the reveal delay.
func (m *Match) Play(choice game.Choice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != MatchPlaying {
		return errors.New("match is not in the playing phase")
	}
	if game.Beats(choice) == "" {
		return errors.New("invalid choice")
	}

	m.playerChoice = choice
	m.opponentChoice = game.Choices[m.rng.Intn(len(game.Choices))]
	m.phase = MatchRevealing

	m.schedule(revealDelay, func() {
		if m.phase != MatchRevealing {
			return
		}
		m.result = game.DetermineWinner(m.playerChoice, m.opponentChoice)
		m.balance += game.Payout(m.result, m.stake)
		m.phase = MatchResult
	})
	return nil
}

// schedule registers a cancellable transition. Callers hold m.mu; the
// callback re-acquires it when the timer fires.
func (m *Match) schedule(d time.Duration, f func()) {
	t := m.clock.AfterFunc(d, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		f()
	})
	m.timers = append(m.timers, t)
}

// Reset returns to the lobby, cancelling any pending transition. The
// balance carries over; choices and result clear.
func (m *Match) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTimers()
	m.phase = MatchWaiting
	m.playerChoice = ""
	m.opponentChoice = ""
	m.result = ""
}

// stopTimers cancels pending transitions. Callers hold m.mu.
func (m *Match) stopTimers() {
	for _, t := range m.timers {
		t.Stop()
	}
	m.timers = nil
}

func (m *Match) Phase() MatchPhase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

func (m *Match) Balance() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance
}

func (m *Match) Stake() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stake
}

func (m *Match) Result() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

func (m *Match) OpponentChoice() game.Choice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opponentChoice
}

func (m *Match) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimers()
}
