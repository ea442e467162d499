package main

import (
	"context"
	"os"
	"strings"

	"github.com/vicosaas/vico-backend/cli"
	"github.com/vicosaas/vico-backend/client"
)

var version = "dev"

const (
	defaultServer = "http://localhost:8080/api/v1"
	serverEnv     = "VICO_SERVER"
	demoEnv       = "VICO_DEMO"
)

func main() {
	sessions, err := client.NewSessionStore()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	api := client.New(resolveServer(), sessions,
		client.WithDemoFixtures(os.Getenv(demoEnv) == "true"))

	deps := cli.Dependencies{
		API:      api,
		Sessions: sessions,
		Version:  version,
	}

	os.Exit(cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr))
}

func resolveServer() string {
	if raw := strings.TrimSpace(os.Getenv(serverEnv)); raw != "" {
		return raw
	}
	return defaultServer
}
