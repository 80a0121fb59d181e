package cmd

import (
	"fmt"
	"sort"
)

// KeysCmd prints every key in descending lexicographic order.  With --upper
// the upper-cased key set is printed instead; set order is unspecified so the
// listing is sorted ascending for deterministic output.
type KeysCmd struct {
	Upper bool `long:"upper" description:"Print the upper-cased key set instead"`
}

func (c *KeysCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var keys []string
	if c.Upper {
		keys = svc.Sandbox().UppercasedKeys()
		sort.Strings(keys)
	} else {
		keys = svc.Sandbox().KeysSortedDescending()
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}
