package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rebuild/internal/core/domain"
)

func (c *CLI) newExplainCmd() *cobra.Command {
	var unit unitFlags

	cmd := &cobra.Command{
		Use:   "explain --src SRC --dst DST [flags] -- COMMAND [ARGS...]",
		Short: "Show why a unit would or would not be rebuilt, without recording anything",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, command, tc, err := unit.resolve(args)
			if err != nil {
				return err
			}

			d := c.app.Explain(cmd.Context(), obj, command, tc)
			deps, known := c.app.Dependencies(obj, tc)
			recorded, hasRecord := c.app.Recorded(obj)
			writeExplanation(cmd.OutOrStdout(), d, command, tc, deps, known)
			writeRecorded(cmd.OutOrStdout(), recorded, hasRecord)
			return nil
		},
	}
	unit.bind(cmd)
	return cmd
}

func writeExplanation(
	w io.Writer,
	d domain.Decision,
	command domain.Command,
	tc domain.Toolchain,
	deps []string,
	known bool,
) {
	_, _ = fmt.Fprintf(w, "verdict:   %s\n", d.Verdict())
	_, _ = fmt.Fprintf(w, "reason:    %s\n", d.Reason)
	if d.Path != "" {
		_, _ = fmt.Fprintf(w, "path:      %s\n", d.Path)
	}
	_, _ = fmt.Fprintf(w, "toolchain: %s\n", tc)
	_, _ = fmt.Fprintf(w, "command:   %s\n", command)
	_, _ = fmt.Fprintf(w, "digest:    %s\n", domain.Digest(command.String()))

	switch {
	case !known:
		_, _ = fmt.Fprintln(w, "inputs:    unknown")
	case len(deps) == 0:
		_, _ = fmt.Fprintln(w, "inputs:    none")
	default:
		for i, dep := range deps {
			label := "inputs:   "
			if i > 0 {
				label = "          "
			}
			_, _ = fmt.Fprintf(w, "%s %s\n", label, dep)
		}
	}
}

func writeRecorded(w io.Writer, text string, ok bool) {
	if !ok {
		_, _ = fmt.Fprintln(w, "recorded:  none")
		return
	}
	_, _ = fmt.Fprintf(w, "recorded:  %s\n", text)
}
