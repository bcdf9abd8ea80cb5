package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/qcalc"
)

// errReported indicates an error that has already been shown to the user.
var errReported = errors.New("error already reported")

func newRootCmd() *cobra.Command {
	vip := viper.New()
	var cfgfile string
	cmd := &cobra.Command{
		Use:   "qcalc [flags] [--] expression...",
		Short: "Evaluate an expression with physical units",
		Long: `Evaluate an expression with physical units.

Examples:
  qcalc 3 m * 4 m
  qcalc 60 mph in km h^-1
  qcalc 2^70 sc always fixed
  qcalc -- -5 + 3`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(vip, cmd.Flags(), cfgfile)
			if err != nil {
				return err
			}
			log := newLogger(cfg.Debug, cmd.ErrOrStderr())
			defer log.Sync()
			log.Debug("config",
				zap.Int("digits", cfg.Digits),
				zap.Int("sci-digits", cfg.SciDigits),
				zap.Float64("sci-over", cfg.SciOver),
				zap.Float64("sci-under", cfg.SciUnder),
				zap.String("definitions", cfg.Definitions),
				zap.String("file", vip.ConfigFileUsed()),
			)
			opts, err := cfg.parseOptions()
			if err != nil {
				return err
			}
			src := strings.Join(args, " ")
			ans, err := calc(log, src, opts)
			if err != nil {
				report(cmd.ErrOrStderr(), src, err, usecolor(cfg.Color, cmd.ErrOrStderr()))
				return errReported
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ans)
			return err
		},
	}
	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&cfgfile, "config", "", "config file (default $XDG_CONFIG_HOME/qcalc/qcalc.yaml)")
	addConfigFlags(flags)
	return cmd
}

// calc parses, evaluates, and formats one query.
func calc(log *zap.Logger, src string, opts []qcalc.ParseOption) (string, error) {
	log.Debug("parsing", zap.String("input", src))
	q, err := qcalc.ParseQuery(src, opts...)
	if err != nil {
		return "", err
	}
	log.Debug("parsed", zap.Stringer("tree", q.Expr()))
	v, err := q.Eval()
	if err != nil {
		return "", err
	}
	log.Debug("evaluated", zap.Stringer("quantity", v), zap.Bool("int", v.Value.IsInt()))
	return q.Format(v)
}

func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
}

// usecolor decides whether to highlight errors written to w.
func usecolor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// report writes an error. If the error locates the problem in the input, the
// input is shown with the span underlined.
func report(w io.Writer, src string, err error, color bool) {
	fmt.Fprintln(w, "error:", err)
	var ie qcalc.InputError
	if !errors.As(err, &ie) {
		return
	}
	start, end := ie.Span()
	if end <= start {
		end = start + 1
	}
	line := strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, src)
	mark := strings.Repeat(" ", start-1) + strings.Repeat("^", end-start)
	if color {
		mark = strings.Repeat(" ", start-1) + "\x1b[1;31m" + strings.Repeat("^", end-start) + "\x1b[0m"
	}
	fmt.Fprintln(w, "  "+line)
	fmt.Fprintln(w, "  "+mark)
}
