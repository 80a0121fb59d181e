package cmd

import "fmt"

// ListToolsCmd prints every registered MCP tool with its description.
type ListToolsCmd struct{}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	// Tools() already sorts by name for deterministic output.
	for _, t := range svc.Tools() {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Printf("%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
