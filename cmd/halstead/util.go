package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/risor-io/halstead/ir"
	"github.com/risor-io/halstead/parser"
)

func fatal(msg any) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", s)
	os.Exit(1)
}

// loadModule reads IR source from the --code flag, the given file, or
// stdin ("-" or no argument), and parses it.
func loadModule(args []string) (*ir.Module, error) {
	var name, source string
	switch {
	case viper.GetString("code") != "":
		name = "<code>"
		source = viper.GetString("code")
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		name = "<stdin>"
		source = string(data)
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		name = filepath.Base(args[0])
		source = string(data)
	}

	start := time.Now()
	m, err := parser.Parse(context.Background(), name, source)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("module", m.Name()).
		Int("functions", m.FunctionCount()).
		Dur("elapsed", time.Since(start)).
		Msg("parsed module")
	return m, nil
}
