// Package main starts the application shell service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	shellcmd "github.com/louisbranch/appshell/internal/cmd/shell"
	"github.com/louisbranch/appshell/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("%v", err)
	}
	cfg, err := shellcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := shellcmd.Run(ctx, cfg, os.Stderr); err != nil {
		config.Exitf("appshell: %v", err)
	}
}
