package cmd

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ResetCmd clears the sandbox and re-populates it from an item list.  Items
// can be supplied inline via repeated -i/--item flags or loaded from a
// YAML/JSON file holding an array via -l/--file; non-string items are
// stringified before insertion.
type ResetCmd struct {
	Items []string `short:"i" long:"item" description:"Item to insert (repeatable)"`
	File  string   `short:"l" long:"file" description:"Path to YAML/JSON file with an item array (use - for stdin)"`
}

func (c *ResetCmd) Execute(_ []string) error {
	if len(c.Items) > 0 && c.File != "" {
		return fmt.Errorf("-i/--item and -l/--file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var items []any
	switch {
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open item file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read items: %w", err)
		}
		if err := yaml.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode items: %w", err)
		}
	default:
		items = make([]any, len(c.Items))
		for i, item := range c.Items {
			items[i] = item
		}
	}

	box := svc.Sandbox()
	box.Reset(items)
	fmt.Printf("%d entries\n", box.Len())
	printEntries(box)
	return nil
}
