package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nathoo/kerker/cli"
	"github.com/nathoo/kerker/config"
	"github.com/nathoo/kerker/engine"
	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/loader"
	"github.com/nathoo/kerker/logging"
	"github.com/nathoo/kerker/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [content-dir]",
	Short: "Play a dungeon",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("plain", false, "use the line-based console instead of the terminal UI")
	f.String("script", "", "read commands from a file and echo them (implies --plain)")
	f.Bool("trace", false, "print the parsed command and RNG position after each turn")
	f.String("layout", "", "XML room layout replacing the Lua rooms")
	f.String("catalog", "", "SQLite catalog overriding the Lua item and enemy templates")
	f.Int64("seed", 0, "random seed (0 seeds from the clock)")
	f.String("name", "", "player name")
	f.Int("hp", 0, "player starting hit points")
}

// settings merges the environment configuration with explicitly set flags.
func settings(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		cfg.ContentDir = args[0]
	}

	f := cmd.Flags()
	if f.Changed("layout") {
		cfg.Layout, _ = f.GetString("layout")
	}
	if f.Changed("catalog") {
		cfg.Catalog, _ = f.GetString("catalog")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("name") {
		cfg.PlayerName, _ = f.GetString("name")
	}
	if f.Changed("hp") {
		cfg.PlayerHP, _ = f.GetInt("hp")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd, args)
	if err != nil {
		return err
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	defs, err := loader.LoadWith(cmd.Context(), cfg.ContentDir, loader.Options{
		Layout:  cfg.Layout,
		Catalog: cfg.Catalog,
	})
	if err != nil {
		return fmt.Errorf("loading game: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := engine.NewRNG(seed)

	w, err := world.Build(defs, world.PlayerOptions{Name: cfg.PlayerName, HP: cfg.PlayerHP}, rng)
	if err != nil {
		return err
	}
	logging.Log.WithFields(logrus.Fields{
		"content": cfg.ContentDir,
		"rooms":   len(w.Rooms),
		"enemies": len(w.Enemies),
		"seed":    seed,
	}).Info("world built")

	eng := engine.New(w, rng)

	plain, _ := cmd.Flags().GetBool("plain")
	trace, _ := cmd.Flags().GetBool("trace")
	script, _ := cmd.Flags().GetString("script")

	// Script mode: read commands from the file, force plain, echo commands.
	if script != "" {
		f, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New(eng, defs.Game)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		if err := c.Run(); err != nil && !errors.Is(err, cli.ErrInputClosed) {
			return err
		}
		return nil
	}

	if plain || !isTerminal() {
		c := cli.New(eng, defs.Game)
		c.Trace = trace
		return c.Run()
	}

	return tui.Run(eng, defs.Game, os.Stdout)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
