package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Command describes the exact process invocation that produces an output.
// It is never executed here; only its textual form matters.
type Command struct {
	Program string
	Args    []string
	Dir     string
	Env     map[string]string
}

// NewCommand builds a Command from an argv slice.
func NewCommand(argv ...string) Command {
	if len(argv) == 0 {
		return Command{}
	}
	return Command{Program: argv[0], Args: slices.Clone(argv[1:])}
}

// Validate checks that the command has a program.
func (c Command) Validate() error {
	if c.Program == "" {
		return ErrEmptyCommand
	}
	return nil
}

// String renders the command deterministically:
//
//	cd "dir" && K1="v1" K2="v2" "prog" "arg1" "arg2"
//
// Environment entries are sorted by key. This text is what the fingerprint
// sidecar stores, so any change to it forces a rebuild.
func (c Command) String() string {
	var b strings.Builder

	if c.Dir != "" {
		b.WriteString("cd ")
		b.WriteString(strconv.Quote(c.Dir))
		b.WriteString(" && ")
	}

	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(c.Env[k]))
		b.WriteByte(' ')
	}

	b.WriteString(strconv.Quote(c.Program))
	for _, arg := range c.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(arg))
	}

	return b.String()
}
