package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// CheckCmd reports whether every candidate appears as a value in the sandbox.
// Candidates can be supplied inline via repeated -v/--value flags or loaded
// from a JSON file holding a string array via --file.
type CheckCmd struct {
	Values []string `short:"v" long:"value" description:"Candidate value (repeatable)"`
	File   string   `long:"file" description:"Path to JSON file with a candidate array (use - for stdin)"`
}

func (c *CheckCmd) Execute(_ []string) error {
	if len(c.Values) > 0 && c.File != "" {
		return fmt.Errorf("-v/--value and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	candidates := c.Values
	if c.File != "" {
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open candidate file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read candidates: %w", err)
		}
		if err := json.Unmarshal(data, &candidates); err != nil {
			return fmt.Errorf("decode candidates: %w", err)
		}
	}

	fmt.Println(svc.Sandbox().ContainsAllValues(candidates))
	return nil
}
