package script

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultDelay stands in for the round trip of a real generation backend.
const DefaultDelay = 600 * time.Millisecond

// ErrSuperseded is returned by Generate when a newer request started before
// this one finished. Its result is discarded.
var ErrSuperseded = errors.New("script generation superseded by a newer request")

// Result is a finished draft.
type Result struct {
	ID     uuid.UUID
	Seq    uint64
	Script string
	Values Values
}

// Generator produces drafts after a fixed delay. Only the most recent
// request may complete; starting a new one cancels whatever is in flight.
type Generator struct {
	delay  time.Duration
	logger zerolog.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewGenerator returns a Generator. A non-positive delay uses DefaultDelay.
func NewGenerator(delay time.Duration, logger zerolog.Logger) *Generator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Generator{delay: delay, logger: logger.With().Str("component", "script").Logger()}
}

// Latest returns the sequence number of the most recently started request.
func (g *Generator) Latest() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Generate blocks for the generator delay and returns the composed draft.
// It returns ErrSuperseded if another Generate call starts first, or the
// context error if ctx ends first.
func (g *Generator) Generate(ctx context.Context, v Values) (Result, error) {
	if err := v.Validate(); err != nil {
		return Result{}, err
	}

	reqCtx, seq := g.begin(ctx)
	id := uuid.New()
	log := g.logger.With().Str("request_id", id.String()).Uint64("seq", seq).Logger()
	log.Debug().Str("trend", v.Trend).Str("tone", string(v.Tone)).Msg("script generation started")

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-reqCtx.Done():
		if ctx.Err() != nil {
			log.Debug().Err(ctx.Err()).Msg("script generation cancelled")
			return Result{}, ctx.Err()
		}
		log.Debug().Msg("script generation superseded")
		return Result{}, ErrSuperseded
	case <-timer.C:
	}

	if !g.finish(seq) {
		log.Debug().Msg("script generation superseded")
		return Result{}, ErrSuperseded
	}

	log.Info().Msg("script generated")
	return Result{ID: id, Seq: seq, Script: Compose(v), Values: v}, nil
}

// Cancel aborts the in-flight request, if any.
func (g *Generator) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.seq++
}

func (g *Generator) begin(parent context.Context) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	g.seq++
	g.cancel = cancel
	return ctx, g.seq
}

// finish reports whether seq is still the newest request and releases its
// cancel func.
func (g *Generator) finish(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq != g.seq {
		return false
	}
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	return true
}
