package service

import (
	"context"
	"fmt"

	"github.com/viant/strmap/sandbox"
	"github.com/viant/strmap/service/config"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. Its sole responsibility is to orchestrate the individual
// preparation steps so that the logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	// Seed the sandbox from configuration, inline or URL-referenced.
	seed, err := s.loadSeed(ctx)
	if err != nil {
		return fmt.Errorf("resolve seed: %w", err)
	}
	if len(seed) > 0 {
		items := make([]any, len(seed))
		for i, item := range seed {
			items[i] = item
		}
		s.box.Reset(items)
	}

	s.buildToolRegistry()
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.box == nil {
		s.box = sandbox.New()
	}
}
