// Package voicechat fronts the external voice-only chat service. The
// client never talks to it beyond a reachability probe; users are simply
// redirected to its fixed URL.
package voicechat

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"mutqin-client/internal/platform/httpapi"
)

const probeTimeout = 5 * time.Second

type Service struct {
	url       string
	available atomic.Bool
	checkedAt atomic.Int64 // unix seconds of the last probe
}

func NewService(url string) *Service {
	s := &Service{url: url}
	// Optimistic until the first probe says otherwise.
	s.available.Store(true)
	return s
}

// URL returns the external chat address for the redirect.
func (s *Service) URL() string {
	return s.url
}

// Available reports the last probed state.
func (s *Service) Available() bool {
	return s.available.Load()
}

// Probe HEAD-checks the chat service. Transport errors are swallowed and
// count as available: the service sits behind another origin and an
// unreachable probe proves nothing about the user's browser reaching it.
func (s *Service) Probe(ctx context.Context) error {
	if err := httpapi.Head(ctx, s.url, probeTimeout); err != nil {
		log.Warn().Err(err).Msg("Voice chat probe failed, assuming available")
		s.available.Store(true)
		s.checkedAt.Store(time.Now().Unix())
		return nil
	}

	s.available.Store(true)
	s.checkedAt.Store(time.Now().Unix())
	return nil
}

// LastChecked returns when the availability flag was last refreshed.
func (s *Service) LastChecked() time.Time {
	sec := s.checkedAt.Load()
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
