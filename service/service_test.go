package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/viant/strmap/sandbox"
	"github.com/viant/strmap/service/config"
)

// TestServiceTools ensures that the service exposes a tool entry for every
// sandbox operation and that each entry can be resolved individually via
// LookupTool.
func TestServiceTools(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err, "failed to create service")

	expected := []string{
		"strmap-add",
		"strmap-containsAll",
		"strmap-distinctCount",
		"strmap-firstKey",
		"strmap-keys",
		"strmap-lastValue",
		"strmap-len",
		"strmap-removeByKey",
		"strmap-removeByValue",
		"strmap-reset",
		"strmap-upperKeys",
		"strmap-uppercaseKeys",
		"strmap-values",
	}
	assert.EqualValues(t, expected, svc.ToolNames())

	for _, te := range svc.Tools() {
		entry, err := svc.LookupTool(te.Metadata.Name)
		if assert.NoError(t, err, "LookupTool(%q) returned error", te.Metadata.Name) {
			assert.EqualValues(t, te.Metadata.Name, entry.Metadata.Name)
			assert.NotNil(t, entry.Handler)
			assert.EqualValues(t, "object", entry.Metadata.InputSchema.Type)
		}
	}

	_, err = svc.LookupTool("strmap-unknown")
	assert.Error(t, err)
}

func TestInlineSeed(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{Seed: &config.Group[string]{Items: []string{"hola", "ab"}}}
	svc, err := New(ctx, WithConfig(cfg))
	require.NoError(t, err)

	box := svc.Sandbox()
	assert.EqualValues(t, 2, box.Len())
	assert.True(t, box.ContainsAllValues([]string{"hola", "ab"}))
	value, ok := box.Value("aloh")
	require.True(t, ok)
	assert.EqualValues(t, "hola", value)
}

func TestWithSandbox(t *testing.T) {
	ctx := context.Background()

	box := sandbox.New()
	box.Add("previous")

	svc, err := New(ctx, WithSandbox(box))
	require.NoError(t, err)
	assert.Same(t, box, svc.Sandbox())
	assert.True(t, svc.Sandbox().ContainsAllValues([]string{"previous"}))
}

func TestURLSeed(t *testing.T) {
	ctx := context.Background()

	location := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(location, []byte("- hola\n- mundo\n"), 0644))

	cfg := &config.Config{Seed: &config.Group[string]{URL: location}}
	svc, err := New(ctx, WithConfig(cfg))
	require.NoError(t, err)
	assert.True(t, svc.Sandbox().ContainsAllValues([]string{"hola", "mundo"}))

	// A missing seed location surfaces as a bootstrap error.
	cfg = &config.Config{Seed: &config.Group[string]{URL: filepath.Join(t.TempDir(), "absent.yaml")}}
	_, err = New(ctx, WithConfig(cfg))
	assert.Error(t, err)
}

func TestToolHandlerRoundTrip(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	callTool := func(name string, args map[string]interface{}) string {
		entry, err := svc.LookupTool(name)
		require.NoError(t, err)
		req := &mcpschema.CallToolRequest{
			Params: mcpschema.CallToolRequestParams{
				Name:      name,
				Arguments: mcpschema.CallToolRequestParamsArguments(args),
			},
		}
		res, jErr := entry.Handler(ctx, req)
		require.Nil(t, jErr, "tool %q returned %v", name, jErr)
		require.EqualValues(t, 1, len(res.Content))
		return res.Content[0].Text
	}

	text := callTool("strmap-add", map[string]interface{}{"value": "hola"})
	var state StateOutput
	require.NoError(t, json.Unmarshal([]byte(text), &state))
	assert.EqualValues(t, 1, state.Size)
	assert.EqualValues(t, map[string]string{"aloh": "hola"}, state.Entries)

	callTool("strmap-add", map[string]interface{}{"value": "ab"})

	text = callTool("strmap-values", nil)
	var values ValuesOutput
	require.NoError(t, json.Unmarshal([]byte(text), &values))
	assert.EqualValues(t, []string{"ab", "hola"}, values.Values)

	text = callTool("strmap-containsAll", map[string]interface{}{"values": []string{"hola", "ab"}})
	var contains ContainsOutput
	require.NoError(t, json.Unmarshal([]byte(text), &contains))
	assert.True(t, contains.Contains)

	text = callTool("strmap-containsAll", map[string]interface{}{"values": []string{"missing"}})
	require.NoError(t, json.Unmarshal([]byte(text), &contains))
	assert.False(t, contains.Contains)

	text = callTool("strmap-reset", map[string]interface{}{"items": []interface{}{"uno", 2}})
	require.NoError(t, json.Unmarshal([]byte(text), &state))
	assert.EqualValues(t, 2, state.Size)
	assert.EqualValues(t, "2", state.Entries["2"])

	text = callTool("strmap-firstKey", nil)
	var key KeyOutput
	require.NoError(t, json.Unmarshal([]byte(text), &key))
	assert.True(t, key.Present)
	assert.EqualValues(t, "2", key.Key)
}
