package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bastianw/seo-content-engine/internal/configcmd"
	"github.com/bastianw/seo-content-engine/internal/dbcmd"
	"github.com/bastianw/seo-content-engine/internal/generate"
	"github.com/bastianw/seo-content-engine/internal/linkscmd"
	"github.com/bastianw/seo-content-engine/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "sce",
		Usage: "Generate SEO content batches from a topic table via LLM providers",
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Run the generation pipeline over the configured topics",
				Flags:  generate.Flags(),
				Action: generate.Action,
			},
			{
				Name:  "config",
				Usage: "Manage the generation settings file",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "Write a settings file with default content",
						Flags:  configcmd.InitFlags(),
						Action: configcmd.InitAction,
					},
					{
						Name:   "show",
						Usage:  "Print the effective settings",
						Flags:  configcmd.Flags(),
						Action: configcmd.ShowAction,
					},
					{
						Name:   "set-topics",
						Usage:  "Replace the topic table from a CSV file",
						Flags:  configcmd.SetTopicsFlags(),
						Action: configcmd.SetTopicsAction,
					},
				},
			},
			{
				Name:  "links",
				Usage: "Link auditing utilities",
				Subcommands: []*cli.Command{
					{
						Name:   "audit",
						Usage:  "Report approved links found in an HTML file",
						Flags:  linkscmd.Flags(),
						Action: linkscmd.AuditAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a machine-readable usage reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "db",
				Usage: "Inspect recorded run history",
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "List recent runs",
						Flags:  dbcmd.RunsFlags(),
						Action: dbcmd.RunsAction,
					},
					{
						Name:      "run",
						Usage:     "Show one run's per-field details (latest if no ID given)",
						ArgsUsage: "[run-id]",
						Flags:     dbcmd.Flags(),
						Action:    dbcmd.RunAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
