package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"
)

const (
	historyFile = ".rpn_history"
	promptMain  = "rpn> "
)

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func (s *session) runREPL() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return s.complete(line)
	})

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s.p.notice("rpn, :help for commands")
	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				log.Errf("reading input: %v", err)
			}
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if s.command(line) {
				break
			}
			continue
		}
		s.eval(line, true)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return 0
}

// complete offers operator and $variable names for the last word of line.
func (s *session) complete(line string) []string {
	start := strings.LastIndexAny(line, " \t") + 1
	head, word := line[:start], line[start:]
	if word == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		if strings.HasPrefix(name, word) && !seen[name] {
			seen[name] = true
			out = append(out, head+name)
		}
	}
	if strings.HasPrefix(word, "$") {
		for _, name := range s.ctx.VariableNames() {
			add("$" + name)
		}
		return out
	}
	for _, name := range s.ctx.Operators() {
		add(name)
	}
	return out
}
