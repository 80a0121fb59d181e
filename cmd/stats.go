package cmd

import (
	"encoding/json"
	"fmt"
)

// StatsCmd summarises the sandbox: entry count, distinct value count and the
// lexicographic extremes.  First key and last value are omitted from the JSON
// form and rendered as <none> in the text form when the sandbox is empty.
type StatsCmd struct {
	JSON bool `long:"json" description:"Print the summary as JSON"`
}

func (c *StatsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	box := svc.Sandbox()
	firstKey, hasFirst := box.FirstKey()
	lastValue, hasLast := box.LastValue()

	if c.JSON {
		summary := struct {
			Size           int    `json:"size"`
			DistinctValues int    `json:"distinctValues"`
			FirstKey       string `json:"firstKey,omitempty"`
			LastValue      string `json:"lastValue,omitempty"`
		}{box.Len(), box.DistinctValueCount(), firstKey, lastValue}
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if !hasFirst {
		firstKey = "<none>"
	}
	if !hasLast {
		lastValue = "<none>"
	}
	fmt.Printf("size:\t%d\n", box.Len())
	fmt.Printf("distinct values:\t%d\n", box.DistinctValueCount())
	fmt.Printf("first key:\t%s\n", firstKey)
	fmt.Printf("last value:\t%s\n", lastValue)
	return nil
}
