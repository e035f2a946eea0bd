package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/cli/config"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/repository"
	"github.com/partner-agent/invitecheck/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func cmdCheck() *cli.Command {
	var (
		resolverCfg config.Resolver
		output      string
	)

	flags := collectFlags(
		&resolverCfg,
		flagList{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output format (json, yaml)",
				Value:       outputJSON,
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:      "check",
		Usage:     "Resolve one invitation URL and print the invitation",
		ArgsUsage: "<invitation-url>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one invitation URL is required", goerr.V("args", c.Args().Len()))
			}
			if output != outputJSON && output != outputYAML {
				return goerr.New("invalid output format", goerr.V("output", output))
			}

			uc := usecase.NewInvitation(repository.NewMemory(), resolverCfg.Configure(), nil)
			result, err := uc.CheckInvitation(ctx, c.Args().First())
			if err != nil {
				return err
			}
			if result == nil {
				return goerr.New("no usable invitation found", goerr.V("url", c.Args().First()))
			}

			return writeResult(os.Stdout, result, output)
		},
	}
}

func writeResult(w io.Writer, result *model.CheckInvitationResult, format string) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return goerr.Wrap(err, "failed to encode result as YAML")
		}
		return enc.Close()

	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return goerr.Wrap(err, "failed to encode result as JSON")
		}
		return nil
	}
}

