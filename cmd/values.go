package cmd

import "fmt"

// ValuesCmd prints every value in ascending lexicographic order, one per
// line.
type ValuesCmd struct{}

func (c *ValuesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	for _, value := range svc.Sandbox().ValuesSorted() {
		fmt.Println(value)
	}
	return nil
}
