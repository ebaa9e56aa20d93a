package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// runContext carries the state of one generation run: the per-run used
// sets, accumulated warnings, insertion counters, the run's clock value
// and its random source. It is created per call and threaded explicitly
// through every stage; nothing about a run lives on the Generator.
type runContext struct {
	now time.Time
	rng *rand.Rand

	usedScripts map[uuid.UUID]struct{}
	usedQuotes  map[uuid.UUID]struct{}

	warnings  repository.GenerationWarnings
	additions repository.AdditionsSummary
}

func newRunContext(now time.Time, rng *rand.Rand) *runContext {
	return &runContext{
		now:         now,
		rng:         rng,
		usedScripts: make(map[uuid.UUID]struct{}),
		usedQuotes:  make(map[uuid.UUID]struct{}),
	}
}

func (rc *runContext) scriptUsed(id uuid.UUID) bool {
	_, ok := rc.usedScripts[id]
	return ok
}

func (rc *runContext) quoteUsed(id uuid.UUID) bool {
	_, ok := rc.usedQuotes[id]
	return ok
}
