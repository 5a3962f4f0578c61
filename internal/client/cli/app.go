// Package cli implements the interactive blogctl shell. Commands are
// dispatched through a small REPL; the session token obtained by login
// lives only in process memory.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dpavlenko/bloglist/internal/client"
)

type App struct {
	api      *client.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(serverAddr string) *App {
	return &App{
		api:    client.New(serverAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
