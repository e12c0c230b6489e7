package draw

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	errs "github.com/skylar-games/case-opener/internal/domain/error"
	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
	"github.com/skylar-games/case-opener/internal/domain/usecase/ledger"
)

// Phase of a spin's two-phase lifecycle
type Phase string

const (
	// PhaseCommitted means the wager is debited and the outcomes are drawn,
	// but the payout is not credited yet (the reveal window is running)
	PhaseCommitted Phase = "committed"
	// PhaseSettled means the payout has been credited
	PhaseSettled Phase = "settled"
)

// Spin is one committed case opening. Between commit and settlement the
// wager is gone and the payout pending; once committed a spin always
// settles, there is no abort path.
type Spin struct {
	ID          string
	AccountID   uint64
	Multiplier  int
	Cost        int64 // tenths
	Outcomes    []entity.Tier
	Reels       [][]entity.Tier
	Payout      int64 // tenths
	Phase       Phase
	CommittedAt time.Time
	SettlesAt   time.Time
}

// Config holds the game's fixed wager parameters
type Config struct {
	BaseCost       int64 // tenths, wager = BaseCost * multiplier
	MaxMultiplier  int
	RevealDuration time.Duration
}

// Session drives case openings against the ledger: the commit debits the
// wager and draws the outcomes, the scheduler fires settlement after the
// reveal window. At most one spin is pending at a time.
type Session struct {
	mu        sync.Mutex
	ledger    *ledger.Ledger
	engine    *Engine
	scheduler coreport.Scheduler
	clock     coreport.TimeProvider
	logger    coreport.Logger
	cfg       Config

	pending  *Spin
	spins    map[string]*Spin
	onSettle func(*Spin)
}

// NewSession creates a spin session over the given ledger and engine
func NewSession(
	l *ledger.Ledger,
	engine *Engine,
	scheduler coreport.Scheduler,
	clock coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Session {
	return &Session{
		ledger:    l,
		engine:    engine,
		scheduler: scheduler,
		clock:     clock,
		logger:    logger,
		cfg:       cfg,
		spins:     make(map[string]*Spin),
	}
}

// OnSettle registers a callback invoked each time a spin settles, after the
// payout is credited. Set it before the session starts taking spins.
func (s *Session) OnSettle(fn func(*Spin)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSettle = fn
}

// Open commits a case opening. It verifies the multiplier, that an account
// is logged in, that no spin is pending and that the balance covers the
// wager, in that order and strictly before any debit. On success the wager
// is debited, the outcomes drawn and settlement scheduled.
func (s *Session) Open(ctx context.Context, multiplier int) (*Spin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if multiplier < 1 || multiplier > s.cfg.MaxMultiplier {
		return nil, errs.ErrInvalidMultiplier
	}

	if s.ledger.Current() == nil {
		return nil, errs.ErrNoCurrentAccount
	}
	if s.pending != nil {
		return nil, errs.ErrSpinInProgress
	}

	// The ledger pairs the affordability check with the debit under its own
	// lock, so a concurrent balance update cannot slip between them.
	cost := s.cfg.BaseCost * int64(multiplier)
	current, err := s.ledger.Debit(ctx, cost)
	if err != nil {
		// Includes the case where the debit reached memory but not the
		// store; no spin is committed against an unpersisted wager.
		return nil, err
	}

	outcomes := s.engine.DrawN(multiplier)
	reels := make([][]entity.Tier, 0, multiplier)
	for _, outcome := range outcomes {
		reels = append(reels, s.engine.BuildReel(outcome))
	}

	now := s.clock.Now()
	spin := &Spin{
		ID:          uuid.NewString(),
		AccountID:   current.ID,
		Multiplier:  multiplier,
		Cost:        cost,
		Outcomes:    outcomes,
		Reels:       reels,
		Payout:      SettlePayout(outcomes),
		Phase:       PhaseCommitted,
		CommittedAt: now,
		SettlesAt:   now.Add(s.cfg.RevealDuration),
	}
	s.pending = spin
	s.spins[spin.ID] = spin

	s.scheduler.AfterFunc(s.cfg.RevealDuration, func() {
		s.settle(spin.ID)
	})

	s.logger.Info("Spin committed", map[string]any{
		"spinId":     spin.ID,
		"accountId":  spin.AccountID,
		"multiplier": multiplier,
		"cost":       entity.FormatTenths(cost),
		"payout":     entity.FormatTenths(spin.Payout),
	})
	return spin, nil
}

// settle credits the payout and closes the spin. Settlement always
// completes in memory; a failed durable write is logged and not retried.
func (s *Session) settle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spin, ok := s.spins[id]
	if !ok || spin.Phase != PhaseCommitted {
		return
	}

	if _, err := s.ledger.UpdateBalance(context.Background(), spin.Payout); err != nil {
		s.logger.Error("Failed to persist spin settlement", map[string]any{
			"spinId": spin.ID,
			"payout": entity.FormatTenths(spin.Payout),
			"error":  err.Error(),
		})
	}

	spin.Phase = PhaseSettled
	if s.pending != nil && s.pending.ID == spin.ID {
		s.pending = nil
	}

	s.logger.Info("Spin settled", map[string]any{
		"spinId": spin.ID,
		"payout": entity.FormatTenths(spin.Payout),
	})

	if s.onSettle != nil {
		s.onSettle(spin)
	}
}

// Spin returns the spin with the given ID
func (s *Session) Spin(id string) (*Spin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spin, ok := s.spins[id]
	if !ok {
		return nil, errs.ErrSpinNotFound
	}
	return spin, nil
}

// Pending returns the spin currently in its reveal window, or nil
func (s *Session) Pending() *Spin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Cost returns the wager for a multiplier, in tenths
func (s *Session) Cost(multiplier int) int64 {
	return s.cfg.BaseCost * int64(multiplier)
}
