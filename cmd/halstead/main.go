package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risor-io/halstead/dis"
	"github.com/risor-io/halstead/halstead"
	"github.com/risor-io/halstead/ir"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:     "halstead [file]",
		Short:   "Compute Halstead complexity metrics for IR functions",
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (%s)", version, commit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(viper.GetBool("verbose"))
			setupColor()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args)
			if err != nil {
				return err
			}
			fns, err := selectFunctions(m, viper.GetString("func"))
			if err != nil {
				return err
			}
			for i, fn := range fns {
				if i > 0 {
					fmt.Println()
				}
				acc := halstead.New()
				acc.Ingest(fn)
				if err := acc.Report(os.Stdout); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("code", "c", "", "IR source to analyze (instead of a file)")
	flags.String("func", "", "Analyze only the named function")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	for _, name := range []string{"code", "func", "no-color", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fatal(err)
		}
	}
	if err := viper.BindEnv("no-color", "NO_COLOR"); err != nil {
		fatal(err)
	}

	root.AddCommand(disCommand(), statsCommand())

	if err := root.Execute(); err != nil {
		fatal(err)
	}
}

func disCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dis [file]",
		Short: "Disassemble IR functions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args)
			if err != nil {
				return err
			}
			fns, err := selectFunctions(m, viper.GetString("func"))
			if err != nil {
				return err
			}
			for i, fn := range fns {
				if i > 0 {
					fmt.Println()
				}
				dis.Fprint(os.Stdout, fn)
			}
			return nil
		},
	}
}

func statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print per-function instruction statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args)
			if err != nil {
				return err
			}
			fns, err := selectFunctions(m, viper.GetString("func"))
			if err != nil {
				return err
			}
			for _, fn := range fns {
				s := fn.Stats()
				fmt.Printf("%s: instructions=%d operands=%d debug=%d args=%d\n",
					fn.Name(), s.InstructionCount, s.OperandCount,
					s.DebugCount, s.ArgumentCount)
			}
			return nil
		},
	}
}

// selectFunctions returns the module's functions, narrowed to one when a
// name filter is set.
func selectFunctions(m *ir.Module, name string) ([]*ir.Function, error) {
	if name == "" {
		fns := make([]*ir.Function, m.FunctionCount())
		for i := range fns {
			fns[i] = m.FunctionAt(i)
		}
		return fns, nil
	}
	fn, ok := m.Function(name)
	if !ok {
		return nil, fmt.Errorf("no function named %q (have: %v)", name, m.FunctionNames())
	}
	return []*ir.Function{fn}, nil
}

func setupLogging(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func setupColor() {
	if viper.GetBool("no-color") || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}
