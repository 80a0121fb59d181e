package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/strmap/internal/conv"
	"github.com/viant/strmap/internal/syncmap"
)

// Tool input payloads.  Schemas are derived from these static structs via
// ToolInputSchema.Load, so every field doubles as documentation of the wire
// shape.
type (
	// AddInput carries the value to insert; the key is its reversal.
	AddInput struct {
		Value string `json:"value"`
	}

	// RemoveByKeyInput identifies the entry to delete by key.
	RemoveByKeyInput struct {
		Key string `json:"key"`
	}

	// RemoveByValueInput identifies the entry to delete by value.
	RemoveByValueInput struct {
		Value string `json:"value"`
	}

	// ContainsAllInput lists candidate values to probe for.
	ContainsAllInput struct {
		Values []string `json:"values"`
	}

	// ResetInput lists items the sandbox is rebuilt from; items may be of any
	// JSON type and are stringified before insertion.
	ResetInput struct {
		Items []any `json:"items"`
	}
)

// Tool result payloads.
type (
	// StateOutput reports the sandbox content after a mutation.
	StateOutput struct {
		Size    int               `json:"size"`
		Entries map[string]string `json:"entries"`
	}

	// ValuesOutput carries an ordered value listing.
	ValuesOutput struct {
		Values []string `json:"values"`
	}

	// KeysOutput carries a key listing.
	KeysOutput struct {
		Keys []string `json:"keys"`
	}

	// KeyOutput reports a single key lookup; Present is false on an empty
	// sandbox.
	KeyOutput struct {
		Key     string `json:"key,omitempty"`
		Present bool   `json:"present"`
	}

	// ValueOutput reports a single value lookup; Present is false on an
	// empty sandbox.
	ValueOutput struct {
		Value   string `json:"value,omitempty"`
		Present bool   `json:"present"`
	}

	// CountOutput reports a counter such as size or distinct values.
	CountOutput struct {
		Count int `json:"count"`
	}

	// ContainsOutput reports the outcome of a containment probe.
	ContainsOutput struct {
		Contains bool `json:"contains"`
	}
)

// buildToolRegistry creates the unified tool registry once during service
// bootstrap.
func (s *Service) buildToolRegistry() {
	s.tools = syncmap.NewRegistry[*serverproto.ToolEntry]()
	for _, entry := range s.toolEntries() {
		s.tools.Set(entry.Metadata.Name, entry)
	}
}

// toolEntries converts every sandbox operation into an MCP tool entry.  Each
// handler serialises sandbox access through the service mutex so that
// concurrent MCP connections stay safe.
func (s *Service) toolEntries() []*serverproto.ToolEntry {
	return []*serverproto.ToolEntry{
		s.newTool("strmap-add", "Insert a value keyed by its reversed form", &AddInput{},
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				var input AddInput
				if jErr := decodeArguments(req, &input); jErr != nil {
					return nil, jErr
				}
				s.box.Add(input.Value)
				return s.stateOutput(), nil
			}),
		s.newTool("strmap-removeByKey", "Remove the entry stored under a key", &RemoveByKeyInput{},
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				var input RemoveByKeyInput
				if jErr := decodeArguments(req, &input); jErr != nil {
					return nil, jErr
				}
				s.box.RemoveByKey(input.Key)
				return s.stateOutput(), nil
			}),
		s.newTool("strmap-removeByValue", "Remove the first entry holding a value", &RemoveByValueInput{},
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				var input RemoveByValueInput
				if jErr := decodeArguments(req, &input); jErr != nil {
					return nil, jErr
				}
				s.box.RemoveByValue(input.Value)
				return s.stateOutput(), nil
			}),
		s.newTool("strmap-values", "List values in ascending order", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				return &ValuesOutput{Values: s.box.ValuesSorted()}, nil
			}),
		s.newTool("strmap-keys", "List keys in descending order", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				return &KeysOutput{Keys: s.box.KeysSortedDescending()}, nil
			}),
		s.newTool("strmap-upperKeys", "List the set of upper-cased keys", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				keys := s.box.UppercasedKeys()
				// Set order is unspecified; sort for stable tool output.
				sort.Strings(keys)
				return &KeysOutput{Keys: keys}, nil
			}),
		s.newTool("strmap-firstKey", "Return the lexicographically smallest key", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				key, ok := s.box.FirstKey()
				return &KeyOutput{Key: key, Present: ok}, nil
			}),
		s.newTool("strmap-lastValue", "Return the lexicographically largest value", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				value, ok := s.box.LastValue()
				return &ValueOutput{Value: value, Present: ok}, nil
			}),
		s.newTool("strmap-len", "Return the number of entries", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				return &CountOutput{Count: s.box.Len()}, nil
			}),
		s.newTool("strmap-distinctCount", "Return the number of distinct values", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				return &CountOutput{Count: s.box.DistinctValueCount()}, nil
			}),
		s.newTool("strmap-containsAll", "Report whether every candidate appears as a value", &ContainsAllInput{},
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				var input ContainsAllInput
				if jErr := decodeArguments(req, &input); jErr != nil {
					return nil, jErr
				}
				return &ContainsOutput{Contains: s.box.ContainsAllValues(input.Values)}, nil
			}),
		s.newTool("strmap-reset", "Clear and re-populate the sandbox from items", &ResetInput{},
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				var input ResetInput
				if jErr := decodeArguments(req, &input); jErr != nil {
					return nil, jErr
				}
				s.box.Reset(input.Items)
				return s.stateOutput(), nil
			}),
		s.newTool("strmap-uppercaseKeys", "Convert every key to upper case in place", nil,
			func(ctx context.Context, req *mcpschema.CallToolRequest) (any, *jsonrpc.Error) {
				s.box.UppercaseKeys()
				return s.stateOutput(), nil
			}),
	}
}

// newTool assembles a tool entry: metadata with a schema loaded from the
// sample input struct and a handler that wraps fn with locking and result
// marshalling.
func (s *Service) newTool(name, description string, sample any, fn func(context.Context, *mcpschema.CallToolRequest) (any, *jsonrpc.Error)) *serverproto.ToolEntry {
	var inputSchema mcpschema.ToolInputSchema
	if sample != nil {
		_ = inputSchema.Load(sample)
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}

	handler := func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		s.mu.Lock()
		output, jErr := fn(ctx, req)
		s.mu.Unlock()
		if jErr != nil {
			return nil, jErr
		}

		var text string
		switch actual := output.(type) {
		case string:
			text = actual
		case []byte:
			text = string(actual)
		default:
			data, err := json.Marshal(output)
			if err != nil {
				return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
			}
			text = string(data)
		}
		return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
			Type: "text",
			Text: text,
		}}}, nil
	}

	return &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        name,
			Description: conv.Pointer(description),
			InputSchema: inputSchema,
		},
		Handler: handler,
	}
}

// stateOutput captures the sandbox after a mutation; callers hold the mutex.
func (s *Service) stateOutput() *StateOutput {
	return &StateOutput{Size: s.box.Len(), Entries: s.box.Snapshot()}
}

// decodeArguments coerces the raw request arguments into the typed input via
// a JSON round-trip.
func decodeArguments(req *mcpschema.CallToolRequest, out any) *jsonrpc.Error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	data, err := json.Marshal(req.Params.Arguments)
	if err == nil {
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return jsonrpc.NewError(jsonrpc.InvalidParams, err.Error(), nil)
	}
	return nil
}
