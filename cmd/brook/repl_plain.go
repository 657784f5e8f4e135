package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brook-lang/brook/brook"
	"github.com/peterh/liner"
)

// runPlainREPL is the line-based prompt used with --plain: no alternate
// screen, history persisted to the configured file, and multi-line input
// driven by a parse probe.
func runPlainREPL(cfg replConfig) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readUnit(ln, cfg.Prompt, cfg.ContPrompt)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if trimmed == ":quit" || trimmed == ":q" {
				return nil
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		fns, errs := brook.ParseString(code)
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		for _, fn := range fns {
			fmt.Print(brook.Dump(fn, cfg.Color))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readUnit reads lines until the accumulated source stops parsing as an
// incomplete prefix, so an unfinished definition gets a continuation prompt
// instead of a diagnostic.
func readUnit(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}

		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C aborts the current input, not the session.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !needsContinuation(src) {
			return src, true
		}
	}
}

func needsContinuation(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	_, errs := brook.ParseString(src)
	for _, err := range errs {
		if brook.IsIncomplete(err) {
			return true
		}
	}
	return false
}
