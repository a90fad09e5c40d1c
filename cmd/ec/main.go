// Command ec is a stack-based (RPN) engineering calculator with a text-based
// user interface that is intended to be used interactively.
//
// If run with no arguments, an interactive session is started. If arguments
// are present, they are tested to see if they are filenames, and if so, the
// files are opened and the contents are executed as a script. If they are not
// file names, then the arguments themselves are treated as scripts and
// executed directly, in the order they are specified. In this case an
// interactive session would not normally be started, but if the interactive
// option is specified, it is started after all scripts have been run.
//
// The contents of ~/.ecrc, ./.ecrc, and the start up file are run upon start
// up if they exist, and then the stack is cleared.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/KenKundert/ec"
	"github.com/KenKundert/ec/actions"
	"github.com/KenKundert/ec/calc"
	"github.com/KenKundert/ec/units"
)

const historyFile = ".ec_history"

var (
	interactive = flag.Bool("i", false, "open an interactive session")
	printX      = flag.Bool("x", false, "print value of x register upon termination, ignored with interactive sessions")
	startupFile = flag.String("s", "", "run commands from `file` before any script or interactive session, stack is cleared afterwards")
	noColor     = flag.Bool("c", false, "do not color the output")
	verbose     = flag.Bool("v", false, "narrate the execution of any scripts")
	showVersion = flag.Bool("version", false, "print version and exit")
)

var colorize = true

func red(s string) string {
	if !colorize {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func magenta(s string) string {
	if !colorize {
		return s
	}
	return "\x1b[35m" + s + "\x1b[0m"
}

func yellow(s string) string {
	if !colorize {
		return s
	}
	return "\x1b[33m" + s + "\x1b[0m"
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableCaller = true
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	lvl := zapcore.WarnLevel
	if verbose {
		lvl = zapcore.DebugLevel
	}
	return log.WithOptions(zap.IncreaseLevel(lvl)).Sugar()
}

type session struct {
	calc        *calc.Calculator
	log         *zap.SugaredLogger
	interactive bool
	prompt      string
}

// evaluateLine runs one line through the calculator. Interactive errors are
// reported and the stack rolled back to its state before the line; script
// errors are fatal.
func (s *session) evaluateLine(line, location string) {
	result, err := s.calc.Evaluate(line)
	if err != nil {
		if s.interactive {
			fmt.Println(red(err.Error()))
			s.prompt = s.calc.RestoreStack()
			return
		}
		if location != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", location, red(err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
		os.Exit(1)
	}
	s.prompt = result
}

// runFile executes each line of a command file. Returns os.ErrNotExist when
// the file is missing so rc files can be skipped silently.
func (s *session) runFile(path string) error {
	f, err := os.Open(expandUser(path))
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		s.evaluateLine(line, fmt.Sprintf("%s.%d", path, lineno))
		s.log.Debugf("%s %d: %s ==> %s", path, lineno, strings.TrimSpace(line), s.prompt)
		if s.calc.QuitRequested() {
			return nil
		}
	}
	return scanner.Err()
}

func expandUser(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// interact runs the read-eval-print loop. The prompt is the formatted value
// of the x register.
func (s *session) interact() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := expandUser("~/" + historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		entered, err := ln.Prompt(magenta(s.prompt) + ": ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return
		}
		if strings.TrimSpace(entered) != "" {
			ln.AppendHistory(entered)
		}
		s.evaluateLine(entered, "")
		if s.calc.QuitRequested() {
			return
		}
	}
}

func main() {
	flag.Parse()
	args := flag.Args()

	if *showVersion {
		fmt.Println(ec.Version)
		return
	}

	colorize = !*noColor && term.IsTerminal(int(os.Stdout.Fd()))
	wantInteractive := *interactive || (len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())))

	log := newLogger(*verbose)
	defer func() { _ = log.Sync() }()

	c := calc.New(calc.Config{
		Actions:     actions.All(),
		Formatter:   actions.DefaultFormat(),
		Variables:   actions.PredefinedVariables(),
		Units:       units.Default(),
		BackUpStack: wantInteractive,
		MessagePrinter: func(msg string) {
			fmt.Println(msg)
		},
		WarningPrinter: func(msg string) {
			fmt.Printf("%s: %s\n", yellow("Warning"), msg)
		},
		Log: log,
	})

	s := &session{calc: c, log: log, interactive: wantInteractive, prompt: "0"}

	// rc files are optional, the startup file is not
	for _, rc := range []string{"~/.ecrc", "./.ecrc"} {
		if err := s.runFile(rc); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			os.Exit(1)
		}
	}
	if *startupFile != "" {
		if err := s.runFile(*startupFile); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			os.Exit(1)
		}
	}
	c.ClearStack()
	s.prompt = "0"

	for _, arg := range args {
		if c.QuitRequested() {
			break
		}
		path := expandUser(arg)
		if _, err := os.Stat(path); err == nil {
			if err := s.runFile(arg); err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				os.Exit(1)
			}
		} else {
			s.evaluateLine(arg, "")
			s.log.Debugf("%s ==> %s", arg, s.prompt)
		}
	}

	switch {
	case c.QuitRequested():
	case wantInteractive:
		s.interact()
	case *printX:
		fmt.Println(s.prompt)
	}
}
