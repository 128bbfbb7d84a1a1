package linenoise

import (
	"bytes"
	"os"
	"strings"

	"github.com/peterh/liner"
)

type LineNoise struct {
	*liner.State
}

// New puts the terminal in raw mode. Callers must Close it to restore the
// terminal.
func New(completions []string) *LineNoise {
	ln := &LineNoise{liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	if len(completions) > 0 {
		ln.SetCompleter(prefixCompleter(completions))
	}
	return ln
}

func prefixCompleter(words []string) liner.Completer {
	return func(line string) []string {
		var out []string
		for _, w := range words {
			if len(line) <= len(w) && strings.EqualFold(w[:len(line)], line) {
				out = append(out, w)
			}
		}
		return out
	}
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}
