package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/partner-agent/invitecheck/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Default().Error("invitecheck failed", "error", err)
		os.Exit(1)
	}
}
