package service

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// loadSeed resolves the seed item list either embedded directly in the config
// or referenced via URL.  Inline items take precedence.
func (s *Service) loadSeed(ctx context.Context) ([]string, error) {
	if s.config == nil || s.config.Seed == nil {
		return nil, nil
	}

	if len(s.config.Seed.Items) > 0 {
		return s.config.Seed.Items, nil
	}

	if s.config.Seed.URL == "" {
		return nil, nil
	}

	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, s.config.Seed.URL)
	if err != nil {
		return nil, fmt.Errorf("download seed %q: %w", s.config.Seed.URL, err)
	}

	var out []string
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse seed %q: %w", s.config.Seed.URL, err)
	}
	return out, nil
}
