package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"regextool/internal/regexlib"
)

// Format selects how transform results are written.
type Format string

const (
	FormatPrefix  Format = "prefix"
	FormatPostfix Format = "postfix"
	FormatInfix   Format = "infix"
	FormatDOT     Format = "dot"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPrefix, FormatPostfix, FormatInfix, FormatDOT:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want prefix, postfix, infix or dot)", ErrBadFormat, s)
}

type Options struct {
	Mode   Mode
	Symbol rune
	Format Format
	// Normalize runs the simplifier on each parsed tree before the mode's
	// operation, and on each transform result before it is written.
	Normalize bool
	Logger    *slog.Logger
}

func (o *Options) Validate() error {
	if o.Mode.Predicate == nil && o.Mode.Transform == nil {
		return fmt.Errorf("%w: %q", ErrUnknownMode, o.Mode.Name)
	}
	if o.Mode.NeedsSymbol && o.Symbol == 0 {
		return fmt.Errorf("--%s: %w", o.Mode.Name, ErrBadSymbol)
	}
	if o.Format == "" {
		o.Format = FormatPrefix
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// Stats counts what happened to the input lines.
type Stats struct {
	Lines    int
	Emitted  int
	Rejected int
}

// Run reads one postfix expression per line from r and writes one result
// per accepted line to w. Lines that do not parse are skipped.
func Run(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	var st Stats
	if err := opts.Validate(); err != nil {
		return st, err
	}
	log := opts.Logger.With("mode", opts.Mode.Name)

	out := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		st.Lines++
		e, err := regexlib.Parse(sc.Text())
		if err != nil {
			st.Rejected++
			log.Debug("line rejected", "line", st.Lines, "err", err)
			continue
		}
		if opts.Normalize {
			e = regexlib.Simplify(e)
		}
		if err := emit(out, e, opts); err != nil {
			return st, err
		}
		st.Emitted++
		log.Debug("line done", "line", st.Lines, "nodes", e.Size())
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("reading input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return st, fmt.Errorf("writing output: %w", err)
	}
	log.Info("input done", "lines", st.Lines, "emitted", st.Emitted, "rejected", st.Rejected)
	return st, nil
}

func emit(w *bufio.Writer, e *regexlib.Expr, opts Options) error {
	m := opts.Mode
	if m.IsPredicate() {
		ans := "no"
		if m.Predicate(e, opts.Symbol) {
			ans = "yes"
		}
		_, err := fmt.Fprintln(w, ans)
		return err
	}

	res := m.Transform(e, opts.Symbol)
	if opts.Normalize {
		res = regexlib.Simplify(res)
	}
	var err error
	switch opts.Format {
	case FormatDOT:
		err = regexlib.WriteDOT(w, res)
	case FormatInfix:
		_, err = fmt.Fprintln(w, regexlib.Infix(res))
	case FormatPostfix:
		_, err = fmt.Fprintln(w, regexlib.Postfix(res))
	default:
		_, err = fmt.Fprintln(w, regexlib.Prefix(res))
	}
	return err
}
