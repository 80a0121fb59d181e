package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/viant/strmap/sandbox"
	"github.com/viant/strmap/service"
	svcconfig "github.com/viant/strmap/service/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *service.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises a service.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*service.Service, error) {
	svcOnce.Do(func() {
		var cfg *svcconfig.Config
		if cfgPath != "" {
			var err error
			cfg, err = svcconfig.Load(cfgPath)
			if err != nil {
				svcErr = err
				return
			}
			// Pretty-print location if the user asked for it via env for debug.
			if debug := os.Getenv("STRMAP_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}

		svcInst, svcErr = service.New(context.Background(), service.WithConfig(cfg))
	})
	return svcInst, svcErr
}

// printEntries writes every entry as a key<TAB>value line, sorted by key for
// deterministic output (helpful for tests & scripting).
func printEntries(box *sandbox.Sandbox) {
	snapshot := box.Snapshot()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s\t%s\n", k, snapshot[k])
	}
}
