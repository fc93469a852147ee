// Package linkscmd implements `sce links audit`: the link auditor run
// standalone over an existing HTML file.
package linkscmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bastianw/seo-content-engine/models"
	"github.com/bastianw/seo-content-engine/pkg/links"
)

// Flags wires the audit subcommand's flag set.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "sce-config.json", Usage: "path to the configuration JSON"},
		&cli.StringFlag{Name: "html", Required: true, Usage: "HTML file to audit"},
	}
}

// AuditAction audits an HTML file against a config's approved link lists.
func AuditAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	body, err := os.ReadFile(c.String("html"))
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	internal := links.ParseList(cfg.ApprovedInternalLinks)
	external := links.ParseList(cfg.ApprovedExternalLinks)
	matchedInternal, matchedExternal := links.Audit(string(body), internal, external)

	fmt.Printf("Link audit: %s\n", c.String("html"))
	fmt.Println(strings.Repeat("=", 60))
	printMatches("Internal", matchedInternal, len(internal))
	printMatches("External", matchedExternal, len(external))

	report, err := links.BuildAnchorReport(string(body), internal, external)
	if err != nil {
		return fmt.Errorf("failed to build anchor report: %w", err)
	}
	fmt.Printf("\nAnchors in body (%d):\n", len(report.Anchors))
	for _, href := range report.Anchors {
		fmt.Printf("  %s\n", href)
	}
	if len(report.Unapproved) > 0 {
		fmt.Printf("\nAnchors outside both approved lists (%d):\n", len(report.Unapproved))
		for _, href := range report.Unapproved {
			fmt.Printf("  %s\n", href)
		}
	}
	return nil
}

func printMatches(label string, matched []string, approved int) {
	fmt.Printf("%s: %d of %d approved URLs found\n", label, len(matched), approved)
	for _, url := range matched {
		fmt.Printf("  %s\n", url)
	}
}
