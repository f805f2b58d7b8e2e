package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rebuild/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	var (
		unit     unitFlags
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:   "check --src SRC --dst DST [flags] -- COMMAND [ARGS...]",
		Short: "Decide whether a unit must be rebuilt and record its command",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, command, tc, err := unit.resolve(args)
			if err != nil {
				return err
			}

			d := c.app.Check(cmd.Context(), obj, command, tc)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatDecision(d))

			if exitCode && d.Rebuild {
				return domain.ErrRebuildRequired
			}
			return nil
		},
	}
	unit.bind(cmd)
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when a rebuild is required")
	return cmd
}

// formatDecision renders "verdict reason [path]".
func formatDecision(d domain.Decision) string {
	if d.Path == "" {
		return fmt.Sprintf("%s %s", d.Verdict(), d.Reason)
	}
	return fmt.Sprintf("%s %s %s", d.Verdict(), d.Reason, d.Path)
}
