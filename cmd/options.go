package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags which is the same library used by other Viant
// CLIs (e.g. fluxor-mcp).
type Options struct {
	Config string `short:"f" long:"config" description:"sandbox service configuration YAML/JSON path"`

	Add       *AddCmd       `command:"add"        description:"Add values keyed by their reversed form"`
	Remove    *RemoveCmd    `command:"remove"     description:"Remove an entry by key or by value"`
	Values    *ValuesCmd    `command:"values"     description:"Print values in ascending order"`
	Keys      *KeysCmd      `command:"keys"       description:"Print keys in descending order"`
	Stats     *StatsCmd     `command:"stats"      description:"Print size, distinct values, first key and last value"`
	Upper     *UpperCmd     `command:"upper"      description:"Convert every key to upper case"`
	Check     *CheckCmd     `command:"check"      description:"Report whether every candidate appears as a value"`
	Reset     *ResetCmd     `command:"reset"      description:"Clear and re-populate the sandbox from items"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered MCP tools"`
	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the sandbox tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "add":
		o.Add = &AddCmd{}
	case "remove":
		o.Remove = &RemoveCmd{}
	case "values":
		o.Values = &ValuesCmd{}
	case "keys":
		o.Keys = &KeysCmd{}
	case "stats":
		o.Stats = &StatsCmd{}
	case "upper":
		o.Upper = &UpperCmd{}
	case "check":
		o.Check = &CheckCmd{}
	case "reset":
		o.Reset = &ResetCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
