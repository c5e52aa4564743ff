package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// termPrompter asks questions on the terminal. Without a TTY it refuses
// confirmations unless --yes was given.
type termPrompter struct {
	in          io.Reader
	out         io.Writer
	assumeYes   bool
	interactive bool
}

func (p *termPrompter) Confirm(ctx context.Context, message string) bool {
	if p.assumeYes {
		return true
	}
	if !p.interactive {
		fmt.Fprintln(p.out, "Refusing to delete without confirmation; pass --yes when not on a terminal.")
		return false
	}

	fmt.Fprintf(p.out, "%s [y/N] ", message)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (p *termPrompter) Notice(ctx context.Context, message string) {
	fmt.Fprintln(p.out, message)
}
