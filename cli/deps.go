// Package cli costruisce l'albero dei comandi di vicoctl, il client a
// riga di comando del backend VICO.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vicosaas/vico-backend/client"
)

// Dependencies raggruppa cio' che i comandi consumano, iniettato da
// main per poterlo sostituire nei test.
type Dependencies struct {
	API      *client.Client
	Sessions *client.SessionStore
	Version  string
}

var errVersionShown = errors.New("version shown")

// Execute esegue la CLI con le dipendenze iniettate.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil || errors.Is(err, errVersionShown) {
		return 0
	}

	if errors.Is(err, client.ErrSessionExpired) {
		_, _ = fmt.Fprintln(stderr, "Sessione scaduta: esegui di nuovo 'vicoctl auth login'.")
		return 3
	}

	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, msg)
	}
	return 1
}
