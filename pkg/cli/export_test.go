package cli

import "github.com/urfave/cli/v3"

var WriteResult = writeResult

func CollectFlags(lists ...[]cli.Flag) []cli.Flag {
	providers := make([]flagProvider, 0, len(lists))
	for _, l := range lists {
		providers = append(providers, flagList(l))
	}
	return collectFlags(providers...)
}
