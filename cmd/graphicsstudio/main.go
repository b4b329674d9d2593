// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for Graphics Studio. With no subcommand
// it serves the web studio; the other subcommands drive the same studio
// from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"graphicsstudio/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(config.Load, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// cli carries what every subcommand needs: the loaded configuration and
// the output streams.
type cli struct {
	loadConfig func() (*config.Config, error)
	cfg        *config.Config
	out        io.Writer
	errOut     io.Writer
	verbose    bool
}

// newRootCmd builds the command tree. loadConfig is injected so tests can
// supply their own environment.
func newRootCmd(loadConfig func() (*config.Config, error), out, errOut io.Writer) *cobra.Command {
	c := &cli{loadConfig: loadConfig, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "graphicsstudio",
		Short: "AI-assisted social media graphic concepts",
		Long: `Graphics Studio turns a short description of a social media graphic into a
complete design concept: palette, typography, layout, copy and design tips.

Run without a subcommand to start the web studio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		c.serveCmd(),
		c.generateCmd(),
		c.savedCmd(),
		c.sampleCmd(),
	)
	return root
}

// setup loads configuration and installs the logger. The server logs to
// stdout; terminal commands keep stdout for their output and only log
// warnings to stderr unless --verbose is set.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.cfg = cfg

	serving := cmd.Name() == "serve" || !cmd.HasParent()
	w, level := c.errOut, slog.LevelWarn
	if serving {
		w, level = c.out, slog.LevelInfo
	}
	if c.verbose || (serving && cfg.IsDev()) {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		slog.Debug(fmt.Sprintf(format, args...))
	})); err != nil {
		slog.Warn("failed to set GOMAXPROCS", "error", err)
	}
	return nil
}
