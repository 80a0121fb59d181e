package cmd

import "fmt"

// RemoveCmd deletes an entry either by key (-k) or by value (-v).  Removal by
// value drops the first matching entry only; absent keys and values are a
// no-op.
type RemoveCmd struct {
	Key   string `short:"k" long:"key"   description:"Key of the entry to remove"`
	Value string `short:"v" long:"value" description:"Value of the entry to remove"`
}

func (c *RemoveCmd) Execute(_ []string) error {
	if c.Key != "" && c.Value != "" {
		return fmt.Errorf("-k/--key and -v/--value are mutually exclusive")
	}
	if c.Key == "" && c.Value == "" {
		return fmt.Errorf("either -k/--key or -v/--value must be provided")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	box := svc.Sandbox()
	if c.Key != "" {
		box.RemoveByKey(c.Key)
	} else {
		box.RemoveByValue(c.Value)
	}
	fmt.Printf("%d entries\n", box.Len())
	printEntries(box)
	return nil
}
