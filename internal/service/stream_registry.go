package service

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// StreamRegistry tracks per-attempt media stream consumers registered by the
// signalling proxy while a participant is monitored. Stop runs at
// finalization and is strictly best-effort: a consumer that fails to shut
// down is logged and forgotten, never surfaced to the participant.
type StreamRegistry interface {
	Register(attemptID uint, stop func() error)
	Stop(attemptID uint)
	Active() int
}

type streamRegistry struct {
	mu       sync.Mutex
	stoppers map[uint]func() error
}

func NewStreamRegistry() StreamRegistry {
	return &streamRegistry{stoppers: make(map[uint]func() error)}
}

func (r *streamRegistry) Register(attemptID uint, stop func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stoppers[attemptID]; ok {
		log.Warn().Uint("attemptID", attemptID).Msg("Register: replacing existing stream consumer")
	}
	r.stoppers[attemptID] = stop
}

func (r *streamRegistry) Stop(attemptID uint) {
	r.mu.Lock()
	stop, ok := r.stoppers[attemptID]
	delete(r.stoppers, attemptID)
	r.mu.Unlock()

	if !ok {
		return
	}
	if err := stop(); err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("Stop: stream consumer shutdown failed")
	}
}

func (r *streamRegistry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stoppers)
}
