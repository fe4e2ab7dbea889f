package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/domino"
	"github.com/katalvlaran/domino/internal/cli/config"
	"github.com/katalvlaran/domino/internal/cli/output"
	"github.com/katalvlaran/domino/solver"
)

const replPrompt = "domino> "

// lineReader is the part of readline.Instance the session needs.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// scanReader reads lines from a non-interactive stream.
type scanReader struct {
	sc *bufio.Scanner
}

func (s *scanReader) Readline() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (s *scanReader) Close() error { return nil }

// session evaluates one line at a time.
type session struct {
	out  io.Writer
	r    *output.Renderer
	opts func() []solver.Option
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Check tile sets interactively",
		Long: `Start an interactive session. Type tiles separated by commas to check
them, or a dot-command:

  .examples   sample inputs
  .about      the rules
  .help       this help
  .quit       leave`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := config.GetLogger(ctx)

			lr, interactive, err := openReader(cmd, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize REPL: %w", err)
			}
			defer func() { _ = lr.Close() }()

			s := &session{
				out:  cmd.OutOrStdout(),
				r:    output.FromContext(ctx),
				opts: func() []solver.Option { return solverOptions(ctx, cfg, logger) },
			}
			if interactive {
				_, _ = fmt.Fprintln(s.out, "Domino line checker. Pips are 0 to 6. Type .help for commands, .quit to exit")
			}

			return s.run(lr)
		},
	}
	cmd.Flags().String("history-file", "", "file to keep REPL history in")

	return cmd
}

// openReader uses readline on a terminal and a plain scanner otherwise.
func openReader(cmd *cobra.Command, cfg *config.Config) (lineReader, bool, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return &scanReader{sc: bufio.NewScanner(in)}, false, nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newDotCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, false, err
	}

	return rl, true, nil
}

func newDotCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".examples"),
		readline.PcItem(".about"),
		readline.PcItem(".quit"),
	)
}

// run reads until EOF or .quit.
func (s *session) run(lr lineReader) error {
	for {
		line, err := lr.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.handle(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handle processes one line and reports whether the session should end.
func (s *session) handle(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	if strings.HasPrefix(line, ".") {
		switch strings.ToLower(strings.Fields(line)[0]) {
		case ".quit", ".exit":
			return true, nil
		case ".help":
			_, _ = fmt.Fprintln(s.out, "Type tiles like 02, 04, 42 or one of .examples .about .help .quit")
		case ".about":
			_ = s.r.Text(aboutText)
		case ".examples":
			rows, err := exampleRows()
			if err != nil {
				return false, err
			}
			_ = s.r.Examples(rows)
		default:
			s.r.Errorf("Unknown command: %s (type .help for commands)", line)
		}

		return false, nil
	}

	rep, err := domino.Evaluate(domino.SplitInput(line), s.opts()...)
	if err != nil {
		return false, err
	}

	return false, s.r.Report(rep)
}
