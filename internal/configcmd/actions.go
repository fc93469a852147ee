// Package configcmd implements the `sce config` subcommands: init, show
// and set-topics. They stand in for the form/editor: each one produces a
// new configuration snapshot on disk rather than mutating anything live.
package configcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bastianw/seo-content-engine/models"
	"github.com/bastianw/seo-content-engine/pkg/csvio"
	"github.com/bastianw/seo-content-engine/pkg/links"
	"github.com/bastianw/seo-content-engine/pkg/llm"
)

// Flags used by the show and set-topics subcommands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "sce-config.json", Usage: "path to the configuration JSON"},
	}
}

// InitFlags wires the init subcommand's flag set.
func InitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "path", Value: "sce-config.json", Usage: "where to write the configuration JSON"},
		&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
	}
}

// SetTopicsFlags wires the set-topics subcommand's flag set.
func SetTopicsFlags() []cli.Flag {
	return append(Flags(),
		&cli.StringFlag{Name: "csv", Required: true, Usage: "topic CSV file to load"},
	)
}

// InitAction writes the default configuration document.
func InitAction(c *cli.Context) error {
	path := c.String("path")
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := models.DefaultConfig()
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Wrote default configuration to %s\n", path)
	fmt.Printf("Known models: %s\n", strings.Join(models.KnownModels, ", "))
	return nil
}

// ShowAction prints a human summary of a configuration document.
func ShowAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	fmt.Printf("Configuration: %s\n", c.String("config"))
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Model:        %s", cfg.ModelName)
	if kind, err := llm.KindForModel(cfg.ModelName); err == nil {
		fmt.Printf(" (provider: %s, key env: %s)", kind, kind.CredentialEnv())
	} else {
		fmt.Printf(" (UNSUPPORTED PROVIDER)")
	}
	fmt.Println()
	fmt.Printf("Temperature:  %.2f\n", cfg.Temperature)
	fmt.Printf("Link targets: %d internal, %d external\n", cfg.TargetInternalLinks, cfg.TargetExternalLinks)

	internal := links.ParseList(cfg.ApprovedInternalLinks)
	external := links.ParseList(cfg.ApprovedExternalLinks)
	fmt.Printf("Approved:     %d internal URLs, %d external URLs\n", len(internal), len(external))

	fmt.Printf("\nPrompts (%d):\n", len(cfg.Prompts))
	for _, field := range models.GeneratedFields {
		mark := "ok"
		if cfg.Prompts[field] == "" {
			mark = "MISSING"
		}
		fmt.Printf("  %-18s %s\n", field, mark)
	}

	fmt.Printf("\nTopics (%d):\n", len(cfg.Topics))
	for i, t := range cfg.Topics {
		if i == 10 {
			fmt.Printf("  ... and %d more\n", len(cfg.Topics)-10)
			break
		}
		fmt.Printf("  %2d. %s (keyword: %s)\n", i+1, t.TopicInput, t.PrimaryKeyword)
	}
	return nil
}

// SetTopicsAction replaces the config's topic table from a CSV and saves
// the document back, wholesale.
func SetTopicsAction(c *cli.Context) error {
	cfgPath := c.String("config")
	cfg, err := models.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	topics, err := csvio.ReadTopicsFile(c.String("csv"))
	if err != nil {
		return err
	}

	cfg.Topics = topics
	if err := cfg.Save(cfgPath); err != nil {
		return err
	}
	fmt.Printf("Replaced topic table in %s: %d rows\n", cfgPath, len(topics))
	return nil
}
