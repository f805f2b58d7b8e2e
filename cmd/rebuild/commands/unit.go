package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// unitFlags describes one compilation unit given on the command line.
type unitFlags struct {
	src       string
	dst       string
	msvc      bool
	toolchain string
	dir       string
	env       []string
}

func (f *unitFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.src, "src", "", "Source file of the unit")
	cmd.Flags().StringVar(&f.dst, "dst", "", "Output file of the unit")
	cmd.Flags().BoolVar(&f.msvc, "msvc", false, "Read MSVC /sourceDependencies records (same as --toolchain msvc)")
	cmd.Flags().StringVar(&f.toolchain, "toolchain", "", "Toolchain family: gnu or msvc")
	cmd.Flags().StringVar(&f.dir, "dir", "", "Working directory the command runs in")
	cmd.Flags().StringArrayVar(&f.env, "env", nil, "Environment assignment KEY=VALUE the command runs with (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("msvc", "toolchain")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")
}

// resolve builds the unit from the flags and the argv after "--".
func (f *unitFlags) resolve(argv []string) (domain.Object, domain.Command, domain.Toolchain, error) {
	obj := domain.Object{Src: f.src, Dst: f.dst}
	if err := obj.Validate(); err != nil {
		return obj, domain.Command{}, domain.ToolchainGNU, err
	}

	cmd := domain.NewCommand(argv...)
	if err := cmd.Validate(); err != nil {
		return obj, cmd, domain.ToolchainGNU, zerr.Wrap(err, "pass the build command after --")
	}
	cmd.Dir = f.dir

	for _, kv := range f.env {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return obj, cmd, domain.ToolchainGNU, zerr.With(zerr.New("invalid environment assignment"), "env", kv)
		}
		if cmd.Env == nil {
			cmd.Env = make(map[string]string, len(f.env))
		}
		cmd.Env[key] = value
	}

	if f.msvc {
		return obj, cmd, domain.ToolchainMSVC, nil
	}
	tc, err := domain.ParseToolchain(f.toolchain)
	return obj, cmd, tc, err
}
