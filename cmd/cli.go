package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/fzft/go-openset/deps/linenoise"
	"github.com/fzft/go-openset/hashset"
)

const HistFileDefault = ".oaset_history"

// ShellCmd implements the 'shell' command.
type ShellCmd struct {
	Bits        int    `short:"b" help:"Table size as a power of two (2..31)" default:"10" env:"OASET_BITS"`
	HistFile    string `name:"histfile" help:"History file, empty for ~/.oaset_history" env:"OASET_HISTFILE"`
	Raw         bool   `help:"Use raw replies even when stdout is a terminal"`
	ExitOnError bool   `short:"e" name:"exit-on-error" help:"Exit with an error if any command fails (non-interactive input only)"`
}

func (c *ShellCmd) Run(g *Globals) error {
	logger := g.logger()
	sh, err := NewShell(c.Bits, os.Stdout, logger)
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		sh.raw = true
	} else {
		sh.raw = c.Raw
		sh.width = terminalWidth(int(os.Stdout.Fd()))
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return sh.repl(historyPath(c.HistFile))
	}

	err = sh.RunScript(os.Stdin)
	if c.ExitOnError {
		return err
	}
	if err != nil {
		logger.Debug("script finished with errors", zap.Error(err))
	}
	return nil
}

// Shell evaluates commands against one hashset.Set[string].
type Shell struct {
	set    *hashset.Set[string]
	bits   int
	it     *hashset.Iterator[string]
	out    io.Writer
	raw    bool
	width  int
	logger *zap.Logger
}

func NewShell(bits int, out io.Writer, logger *zap.Logger) (*Shell, error) {
	set, err := hashset.New[string](bits, hashset.WithLogger[string](logger))
	if err != nil {
		return nil, err
	}
	return &Shell{
		set:    set,
		bits:   bits,
		out:    out,
		width:  defaultWidth,
		logger: logger,
	}, nil
}

// exec runs one command line. quit is set for QUIT and EXIT. Empty lines
// are a no-op with an empty reply.
func (sh *Shell) exec(line string) (r reply, quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return statusReply(""), false, nil
	}

	name := strings.ToUpper(args[0])
	if name == "EXIT" {
		name = "QUIT"
	}
	c, ok := commandTable[name]
	if !ok {
		return reply{}, false, fmt.Errorf("%w '%s'", ErrUnknownCommand, args[0])
	}
	if err := c.checkArity(args[1:]); err != nil {
		return reply{}, false, err
	}
	if c.proc == nil {
		return statusReply(""), true, nil
	}

	r, err = c.proc(sh, args[1:])
	if err != nil {
		sh.logger.Debug("command failed", zap.String("cmd", name), zap.Error(err))
		return reply{}, false, err
	}
	return r, false, nil
}

// eval runs line and writes the reply. It returns the command error, if any,
// after printing it.
func (sh *Shell) eval(line string) (bool, error) {
	r, quit, err := sh.exec(line)
	if err != nil {
		r = errorReply(err)
	}
	if out := r.format(sh.raw, sh.width); out != "" {
		fmt.Fprintln(sh.out, out)
	}
	return quit, err
}

// RunScript evaluates each line of in until EOF or QUIT. Command errors are
// printed and collected; reading stops only on I/O errors.
func (sh *Shell) RunScript(in io.Reader) error {
	var errs MultiError
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		quit, err := sh.eval(scanner.Text())
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineno, err))
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	return errs.errOrNil()
}

func (sh *Shell) prompt() string {
	return fmt.Sprintf("oaset[%d/%d]> ", sh.set.Size(), sh.set.Capacity())
}

func (sh *Shell) repl(historyFile string) error {
	line := linenoise.New(commandNames())
	defer line.Close()

	if historyFile != "" {
		if err := line.HistoryLoad(historyFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			sh.logger.Warn("could not load history", zap.String("file", historyFile), zap.Error(err))
		}
	}

	for {
		input, err := line.Prompt(sh.prompt())
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if quit, _ := sh.eval(input); quit {
			break
		}
	}

	if historyFile != "" {
		if err := line.HistorySave(historyFile); err != nil {
			sh.logger.Warn("could not save history", zap.String("file", historyFile), zap.Error(err))
		}
	}
	return nil
}

// historyPath resolves the history file: the flag or env value wins, then
// the default file in the home directory.
func historyPath(configured string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HistFileDefault)
}
