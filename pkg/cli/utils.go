package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

// flagProvider is a config section contributing flags to a command
type flagProvider interface {
	Flags() []cli.Flag
}

// flagList lets command-local flags sit next to config sections
type flagList []cli.Flag

func (l flagList) Flags() []cli.Flag {
	return l
}

// collectFlags gathers the flags of every section of a command. Two sections
// declaring the same flag name or alias is a programming error.
func collectFlags(providers ...flagProvider) []cli.Flag {
	var result []cli.Flag
	seen := make(map[string]struct{})
	for _, p := range providers {
		for _, f := range p.Flags() {
			for _, name := range f.Names() {
				if _, ok := seen[name]; ok {
					panic(fmt.Sprintf("duplicate flag %q", name))
				}
				seen[name] = struct{}{}
			}
			result = append(result, f)
		}
	}
	return result
}
