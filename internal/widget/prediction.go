package widget

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	SymbolFire = "🔥"
	SymbolIce  = "❄️"
)

var predictionSymbols = []string{SymbolFire, SymbolIce}

type PredictionPhase string

const (
	PhaseWaiting  PredictionPhase = "waiting"
	PhaseGuessing PredictionPhase = "guessing"
	PhaseRevealed PredictionPhase = "revealed"
)

const (
	guessWindowTicks = 5
	revealHold       = 3 * time.Second
)

// PredictionData is the slice of widget state worth persisting across
// sessions. Counters follow the same rules as the server aggregates: a
// miss resets the running streak, the best streak only grows.
type PredictionData struct {
	Symbol         string `json:"symbol"`
	UserGuess      string `json:"userGuess"`
	IsCorrect      *bool  `json:"isCorrect"`
	Streak         int    `json:"streak"`
	BestStreak     int    `json:"bestStreak"`
	TotalGuesses   int    `json:"totalGuesses"`
	CorrectGuesses int    `json:"correctGuesses"`
}

// Prediction is the minute-clocked guessing engine. Rounds open on
// real-world minute boundaries and stay open for a five tick countdown;
// guessing or running out the countdown reveals the symbol.
type Prediction struct {
	mu         sync.Mutex
	id         string
	phase      PredictionPhase
	countdown  int
	timeToNext int
	data       PredictionData

	clock      Clock
	rng        *rand.Rand
	store      StateStore
	resetTimer Timer
}

func NewPrediction(id string, clock Clock, rng *rand.Rand, store StateStore) (*Prediction, error) {
	p := &Prediction{
		id:    id,
		phase: PhaseWaiting,
		data:  PredictionData{Symbol: SymbolFire},
		clock: clock,
		rng:   rng,
		store: store,
	}

	if store != nil {
		if _, err := store.Load(context.Background(), p.storeKey(), &p.data); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Prediction) ID() string {
	return p.id
}

func (p *Prediction) storeKey() string {
	return "chronoflip:" + p.id
}

// Tick drives the once-per-second cadence: minute-boundary sync while
// waiting, countdown while a round is open.
func (p *Prediction) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	msToNext := 60000 - p.clock.Now().UnixMilli()%60000
	p.timeToNext = int(msToNext / 1000)

	switch p.phase {
	case PhaseWaiting:
		if msToNext <= 1000 {
			p.startRound()
		}
	case PhaseGuessing:
		p.countdown--
		if p.countdown <= 0 {
			p.reveal("")
		}
	}
}

// startRound picks the round's symbol and opens the guess window.
// Callers hold p.mu.
func (p *Prediction) startRound() {
	p.data.Symbol = predictionSymbols[p.rng.Intn(len(predictionSymbols))]
	p.data.UserGuess = ""
	p.data.IsCorrect = nil
	p.phase = PhaseGuessing
	p.countdown = guessWindowTicks
}

// Guess locks in the player's call and reveals immediately.
func (p *Prediction) Guess(symbol string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase != PhaseGuessing {
		return errors.New("no round open for guessing")
	}

	p.data.UserGuess = symbol
	p.reveal(symbol)
	return nil
}

// reveal settles the round. An empty guess means the window ran out and
// counts as a miss. Callers hold p.mu.
func (p *Prediction) reveal(guess string) {
	correct := guess != "" && guess == p.data.Symbol
	p.data.IsCorrect = &correct

	if correct {
		p.data.Streak++
		p.data.CorrectGuesses++
	} else {
		p.data.Streak = 0
	}
	if p.data.Streak > p.data.BestStreak {
		p.data.BestStreak = p.data.Streak
	}
	p.data.TotalGuesses++

	p.phase = PhaseRevealed
	p.persist()

	p.resetTimer = p.clock.AfterFunc(revealHold, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.phase == PhaseRevealed {
			p.phase = PhaseWaiting
		}
	})
}

// persist writes through to the state store. Callers hold p.mu.
func (p *Prediction) persist() {
	if p.store == nil {
		return
	}
	if err := p.store.Save(context.Background(), p.storeKey(), &p.data); err != nil {
		log.Error().Err(err).Str("session", p.id).Msg("error persisting prediction state")
	}
}

func (p *Prediction) Phase() PredictionPhase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

func (p *Prediction) Countdown() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.countdown
}

func (p *Prediction) TimeToNext() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.timeToNext
}

func (p *Prediction) Data() PredictionData {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// Close cancels the pending reset timer.
func (p *Prediction) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resetTimer != nil {
		p.resetTimer.Stop()
		p.resetTimer = nil
	}
}
