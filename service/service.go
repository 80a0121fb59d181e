package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/strmap/internal/syncmap"
	"github.com/viant/strmap/sandbox"
	"github.com/viant/strmap/service/config"
)

// Service bundles configuration, a sandbox instance and the MCP tool registry
// derived from it.  All heavy lifting during instantiation lives in
// bootstrap.go to keep this file focused on the public surface.
type Service struct {
	config *config.Config

	// mu serialises sandbox access from tool handlers; the sandbox itself is
	// not safe for concurrent use.
	mu  sync.Mutex
	box *sandbox.Sandbox

	// Tool entries indexed by name, registered once during bootstrap and
	// shared by every handler instance.
	tools *syncmap.Map[*serverproto.ToolEntry]
}

// Config returns the effective configuration instance passed to the service
// at construction time.  Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Sandbox returns the underlying container.  The sandbox is single-threaded;
// concurrent callers go through the tool handlers instead, which serialise
// access.
func (s *Service) Sandbox() *sandbox.Sandbox { return s.box }

// Tools returns every registered tool entry sorted by name.  The slice is
// detached from internal state and therefore safe for callers to modify.
func (s *Service) Tools() serverproto.Tools {
	entries := s.tools.List()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Metadata.Name < entries[j].Metadata.Name
	})
	result := make(serverproto.Tools, 0, len(entries))
	result = append(result, entries...)
	return result
}

// ToolNames returns all registered tool names in ascending order.
func (s *Service) ToolNames() []string {
	names := s.tools.Names()
	sort.Strings(names)
	return names
}

// LookupTool returns the entry registered under name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	entry, ok := s.tools.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	return entry, nil
}

// Option modifies a service instance before it is initialised. Users can pass
// an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithSandbox supplies a pre-populated sandbox instead of the empty default.
func WithSandbox(box *sandbox.Sandbox) Option {
	return func(s *Service) {
		s.box = box
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
