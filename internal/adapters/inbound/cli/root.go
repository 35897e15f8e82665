package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/rsr-standard/rsrcheck/internal/adapters/outbound/config"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/exporter"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/gitinfo"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/probe"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/tui"
	"github.com/rsr-standard/rsrcheck/internal/application"
	"github.com/rsr-standard/rsrcheck/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrNonCompliant signals a clean run whose repository failed Bronze.
// main exits 1 for it without printing; the report banner already
// explains the outcome.
var ErrNonCompliant = errors.New("repository is not RSR compliant")

func newRootCmd() *cobra.Command {
	var (
		jsonExport bool
		jsonOutput string
		badge      bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:           "rsrcheck [path]",
		Short:         "Audit a repository against the Rhodium Standard Repository checklist",
		Long:          "rsrcheck audits a repository tree against the fixed RSR checklist (Bronze, Silver, Gold, Platinum) and reports the overall compliance level.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := application.NewAuditService(probe.NewOpener(), gitinfo.New())
			report, err := svc.Audit(absPath, cfg)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if !quiet {
				fmt.Fprint(out, tui.RenderReport(report))
			}

			if jsonExport {
				outFile := cfg.JSONOutput
				if cmd.Flags().Changed("json-output") {
					outFile = jsonOutput
				}
				written, err := exporter.Write(report, outFile)
				if err != nil {
					return fmt.Errorf("exporting JSON: %w", err)
				}
				fmt.Fprintf(out, "JSON report exported to: %s\n", written)
			}

			if badge {
				url := domain.BadgeURL(report.OverallLevel())
				fmt.Fprintf(out, "Badge URL: %s\n", url)
				fmt.Fprintf(out, "  Markdown: ![RSR Compliance](%s)\n", url)
				fmt.Fprintf(out, "  HTML: <img src=%q alt=\"RSR Compliance\">\n", url)
			}

			if report.OverallLevel() == domain.NonCompliant {
				return ErrNonCompliant
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonExport, "json", false, "Export the report as JSON")
	cmd.Flags().StringVar(&jsonOutput, "json-output", domain.DefaultJSONOutput, "JSON output file name")
	cmd.Flags().BoolVar(&badge, "badge", false, "Print the shields.io compliance badge URL")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the console report")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
