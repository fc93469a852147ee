// Package dbcmd implements the `sce db` subcommands for inspecting run
// history.
package dbcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bastianw/seo-content-engine/pkg/artifacts"
	dbpkg "github.com/bastianw/seo-content-engine/pkg/db"
)

// RunsAction lists recent generation runs.
func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("out"))
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-28s %-10s %-11s %-7s %-6s %-7s\n",
		"ID", "Created", "Model", "Provider", "Mode", "Topics", "OK", "Failed")
	fmt.Println(strings.Repeat("-", 100))
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-28s %-10s %-11s %-7d %-6d %-7d\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ModelName,
			r.Provider,
			r.Mode,
			r.TopicCount,
			r.FieldsOK,
			r.FieldsFailed,
		)
	}
	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'sce db run <id>' to see per-field details\n")
	return nil
}

// RunAction shows one run's per-field details. With no argument it shows
// the latest run.
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("out"))
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	var runID int64
	if arg := c.Args().First(); arg != "" {
		runID, err = strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", arg)
		}
	} else {
		runID, err = database.LatestRunID()
		if err != nil {
			return err
		}
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}
	fields, err := database.GetRunFields(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d (%s)\n", run.RunID, run.ExternalID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Model:     %s (%s)\n", run.ModelName, run.Provider)
	fmt.Printf("Mode:      %s\n", run.Mode)
	fmt.Printf("Topics:    %d (%d fields ok, %d failed)\n", run.TopicCount, run.FieldsOK, run.FieldsFailed)
	if run.RunDir != "" {
		fmt.Printf("Artifacts: %s\n", run.RunDir)
	}

	fmt.Printf("\nFields (%d):\n", len(fields))
	fmt.Println(strings.Repeat("-", 60))
	for _, f := range fields {
		status := "ok"
		if f.Status == dbpkg.StatusFailed {
			status = "FAILED"
		}
		fmt.Printf("%2d. [%-6s] %s / %s\n", f.TopicIndex+1, status, f.TopicInput, f.Field)
		if f.Status == dbpkg.StatusFailed && f.ErrorMessage.Valid {
			fmt.Printf("    %s\n", f.ErrorMessage.String)
		}
		if f.MatchedInternal.Valid {
			fmt.Printf("    internal links: %s\n", f.MatchedInternal.String)
		}
		if f.MatchedExternal.Valid {
			fmt.Printf("    external links: %s\n", f.MatchedExternal.String)
		}
		if f.Language.Valid {
			fmt.Printf("    language: %s\n", f.Language.String)
		}
	}
	return nil
}

// Flags shared by the db subcommands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "out", Value: artifacts.DefaultBaseDir, Usage: "artifacts base directory holding the history database"},
	}
}

// RunsFlags extends Flags with listing options.
func RunsFlags() []cli.Flag {
	return append(Flags(),
		&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of runs to show"},
	)
}
