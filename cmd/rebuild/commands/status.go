package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/rebuild/internal/app"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// statusRecord is one line of `status --json` output.
type statusRecord struct {
	Unit    string        `json:"unit"`
	Dst     string        `json:"dst"`
	Rebuild bool          `json:"rebuild"`
	Reason  domain.Reason `json:"reason"`
	Path    string        `json:"path,omitempty"`
	Digest  string        `json:"digest"`
}

func (c *CLI) newStatusCmd() *cobra.Command {
	var (
		write    bool
		asJSON   bool
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:   "status [units...]",
		Short: "Decide every unit of the manifest",
		Long: "Decide every unit of the manifest. By default nothing is written, so a changed " +
			"command keeps reporting a rebuild until check records it or --write is given.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return zerr.Wrap(err, "failed to determine working directory")
			}
			configName, _ := cmd.Flags().GetString("config")
			verbose, _ := cmd.Flags().GetBool("verbose")

			c.setJSON(asJSON)
			report, err := c.app.Status(cmd.Context(), cwd, app.StatusOptions{
				Config: configName,
				Units:  args,
				Write:  write,
			})
			if err != nil {
				return err
			}

			if err := writeStatus(cmd.OutOrStdout(), report, asJSON, verbose); err != nil {
				return err
			}

			if exitCode && anyRebuild(report.Results) {
				return domain.ErrRebuildRequired
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Record each unit's command, as check does")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per unit and log in JSON")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when any unit requires a rebuild")
	return cmd
}

func writeStatus(w io.Writer, report *app.StatusReport, asJSON, verbose bool) error {
	if asJSON {
		return writeStatusJSON(w, report.Results)
	}
	if err := writeStatusTable(w, report.Results); err != nil {
		return err
	}
	if verbose {
		writeStatusLogs(w, report.Results)
	}
	writeStatusSummary(w, report.Summary)
	return nil
}

func writeStatusTable(w io.Writer, results []scheduler.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "UNIT\tVERDICT\tREASON\tPATH\tDIGEST")
	for _, r := range results {
		path := r.Decision.Path
		if path == "" {
			path = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Unit.Name, r.Decision.Verdict(), r.Decision.Reason, path, r.Digest)
	}
	return tw.Flush()
}

func writeStatusJSON(w io.Writer, results []scheduler.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(statusRecord{
			Unit:    r.Unit.Name,
			Dst:     r.Unit.Object.Dst,
			Rebuild: r.Decision.Rebuild,
			Reason:  r.Decision.Reason,
			Path:    r.Decision.Path,
			Digest:  r.Digest,
		}); err != nil {
			return zerr.Wrap(err, "failed to write status")
		}
	}
	return nil
}

// writeStatusLogs prints each unit's recorded output, one line per entry,
// prefixed with the unit name.
func writeStatusLogs(w io.Writer, results []scheduler.Result) {
	for _, r := range results {
		for line := range strings.Lines(r.Log) {
			_, _ = fmt.Fprintf(w, "%s: %s", r.Unit.Name, line)
		}
	}
}

func writeStatusSummary(w io.Writer, s domain.RunSummary) {
	_, _ = fmt.Fprintf(w, "%d units: %d up to date, %d to rebuild", s.Total, s.Cached, s.Stale())
	if s.Failed > 0 {
		_, _ = fmt.Fprintf(w, ", %d failed", s.Failed)
	}
	_, _ = fmt.Fprintln(w)
}

func anyRebuild(results []scheduler.Result) bool {
	for _, r := range results {
		if r.Decision.Rebuild {
			return true
		}
	}
	return false
}
