package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"regextool/internal/logger"
	"regextool/internal/session"
)

const logLevelEnv = "REGEXTOOL_LOG_LEVEL"

var errNoMode = errors.New("no mode selected")

type rootFlags struct {
	bools     map[string]*bool
	symbols   map[string]*string
	format    string
	normalize bool
	logLevel  string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{
		bools:   map[string]*bool{},
		symbols: map[string]*string{},
	}

	cmd := &cobra.Command{
		Use:   "regextool --<mode> [symbol]",
		Short: "Reason about regular expressions written in postfix notation",
		Long: `regextool reads one regular expression per line from standard input,
written in postfix notation, and prints one answer per line.

Tokens: / is the empty language, a letter or digit is itself, * is the star
of the operand before it, + is the union and . the concatenation of the two
operands before it. Whitespace and other characters are ignored. Lines that
do not reduce to exactly one expression are skipped.

Predicate modes print yes or no. Transform modes print the resulting
expression in prefix notation (see --format).

Example:
  echo "a b +" | regextool --no-op          # +ab
  echo "a *"   | regextool --starts-with a  # yes
  echo "/ a ." | regextool --empty          # yes`,
		Version:       "0.1.0",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f)
		},
	}

	var names []string
	for _, m := range session.Modes() {
		names = append(names, m.Name)
		if m.NeedsSymbol {
			f.symbols[m.Name] = cmd.Flags().String(m.Name, "", m.Usage)
		} else {
			f.bools[m.Name] = cmd.Flags().Bool(m.Name, false, m.Usage)
		}
	}
	cmd.MarkFlagsOneRequired(names...)
	cmd.MarkFlagsMutuallyExclusive(names...)

	cmd.Flags().StringVar(&f.format, "format", string(session.FormatPrefix),
		"output of transform modes: prefix, postfix, infix or dot")
	cmd.Flags().BoolVar(&f.normalize, "normalize", false,
		"simplify each expression before and after the mode's operation")
	cmd.Flags().StringVar(&f.logLevel, "log-level", env.Str(logLevelEnv, "warn"),
		"stderr log level: debug, info, warn or error (env "+logLevelEnv+")")
	cmd.Flags().SortFlags = false

	return cmd
}

// selectedMode returns the mode picked on the command line and its symbol.
func (f *rootFlags) selectedMode(cmd *cobra.Command) (session.Mode, rune, error) {
	for _, m := range session.Modes() {
		if !cmd.Flags().Changed(m.Name) {
			continue
		}
		if !m.NeedsSymbol {
			if !*f.bools[m.Name] {
				continue
			}
			return m, 0, nil
		}
		sym, err := session.ParseSymbol(*f.symbols[m.Name])
		if err != nil {
			return session.Mode{}, 0, fmt.Errorf("--%s: %w", m.Name, err)
		}
		return m, sym, nil
	}
	return session.Mode{}, 0, errNoMode
}

func runRoot(cmd *cobra.Command, f *rootFlags) error {
	lvl, err := logger.ParseLevel(f.logLevel)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Writer: cmd.ErrOrStderr(), Level: lvl})

	mode, sym, err := f.selectedMode(cmd)
	if err != nil {
		return err
	}
	format, err := session.ParseFormat(f.format)
	if err != nil {
		return err
	}

	_, err = session.Run(cmd.InOrStdin(), cmd.OutOrStdout(), session.Options{
		Mode:      mode,
		Symbol:    sym,
		Format:    format,
		Normalize: f.normalize,
		Logger:    log,
	})
	return err
}
