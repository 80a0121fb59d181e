package cmd

import "fmt"

// UpperCmd converts every key to its upper-case form while values stay
// untouched.  Keys that collide after the conversion collapse into a single
// entry.
type UpperCmd struct{}

func (c *UpperCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	box := svc.Sandbox()
	box.UppercaseKeys()
	fmt.Printf("%d entries\n", box.Len())
	printEntries(box)
	return nil
}
