// Command slac evaluates expressions from the command line or an
// interactive prompt.
//
// Usage:
//
//	slac -e "1 + 2"                  evaluate one expression
//	slac -env vars.yaml              start a prompt with variables
//	slac -list                       print the builtin functions
//
// Inside the prompt, :funcs lists functions, :vars lists variables,
// and :quit exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/cache"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/config"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/engine"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/stdlib"
)

var (
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
	nameColor   = color.New(color.FgCyan)
)

func main() {
	var (
		expression = flag.String("e", "", "evaluate a single expression and exit")
		envFile    = flag.String("env", "", "load variables from a YAML or JSON file")
		cachePath  = flag.String("cache", "", "persist compiled expressions to a SQLite file")
		noOptimize = flag.Bool("no-optimize", false, "skip the optimizer")
		validate   = flag.Bool("validate", false, "validate against the environment before executing")
		boolOnly   = flag.Bool("boolean", false, "require a boolean result")
		list       = flag.Bool("list", false, "print the builtin functions and exit")
		verbose    = flag.Bool("v", false, "log evaluations to stderr")
	)
	flag.Parse()

	env := slac.NewStaticEnvironment()
	stdlib.ExtendEnvironment(env)

	if *list {
		listFunctions(env)
		return
	}

	if *envFile != "" {
		cfg, err := config.FromFile(*envFile)
		if err != nil {
			fatal(err)
		}
		if err := cfg.Apply(env); err != nil {
			fatal(err)
		}
	}

	var opts []engine.Option
	if *noOptimize {
		opts = append(opts, engine.WithoutOptimization())
	}
	if *validate {
		opts = append(opts, engine.WithValidation())
	}
	if *boolOnly {
		opts = append(opts, engine.WithBooleanResult())
	}
	if *verbose {
		opts = append(opts, engine.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	if *cachePath != "" {
		store, err := cache.NewSQLiteStore(*cachePath)
		if err != nil {
			fatal(err)
		}
		opts = append(opts, engine.WithCache(cache.New(store)))
	}

	e := engine.New(env, opts...)
	defer e.Close()

	if *expression != "" {
		if !evalLine(e, *expression) {
			os.Exit(1)
		}
		return
	}

	repl(e, env)
}

func fatal(err error) {
	errorColor.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// evalLine evaluates one source line and prints the result or error.
func evalLine(e *engine.Engine, source string) bool {
	result, err := e.Evaluate(context.Background(), source)
	if err != nil {
		errorColor.Fprintln(os.Stderr, err)
		return false
	}
	resultColor.Println(result.String())
	return true
}

func repl(e *engine.Engine, env *slac.StaticEnvironment) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := filepath.Join(os.TempDir(), ".slac_history")
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("slac expression prompt (:quit to exit)")
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit", ":q", ":exit":
			return
		case ":funcs":
			listFunctions(env)
		case ":vars":
			listVariables(env)
		default:
			evalLine(e, input)
		}
	}
}

func listFunctions(env *slac.StaticEnvironment) {
	for _, function := range env.Functions() {
		nameColor.Printf("%s", function.Name)
		fmt.Printf("(%s parameters)\n", function.Arity.String())
	}
}

func listVariables(env *slac.StaticEnvironment) {
	for _, name := range env.Variables() {
		value, _ := env.Variable(name)
		nameColor.Printf("%s", name)
		fmt.Printf(" = %s\n", value.String())
	}
}
