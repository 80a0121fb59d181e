package cmd

import "fmt"

// AddCmd inserts one or more values into the sandbox; each value is stored
// under its reversed form.  The resulting entries are printed so that a
// single invocation shows the effect of the mutation.
type AddCmd struct {
	Values []string `short:"v" long:"value" description:"Value to add (repeatable)" required:"yes"`
}

func (c *AddCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	box := svc.Sandbox()
	for _, value := range c.Values {
		box.Add(value)
	}
	fmt.Printf("%d entries\n", box.Len())
	printEntries(box)
	return nil
}
