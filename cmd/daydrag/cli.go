package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/depeter/daydrag/internal/config"
	"github.com/depeter/daydrag/internal/scenario"
	"github.com/depeter/daydrag/internal/term"
	"github.com/depeter/daydrag/internal/timeline"
)

// runCLI parses CLI subcommands. Returns (handled, exitCode).
func runCLI(args []string) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "help", "-h", "--help":
		printHelp(os.Stdout)
		return true, 0
	case "term":
		return true, cliTerm(args[1:])
	case "replay":
		return true, cliReplay(args[1:], os.Stdout)
	case "config":
		return true, cliConfig(args[1:], os.Stdout)
	default:
		// Not a CLI subcommand; open the window
		return false, 0
	}
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `daydrag - drag an event across a day timeline

Usage:
  daydrag                     open the timeline window
  daydrag term                run the timeline in the terminal
  daydrag replay [-debug] FILE...
                              replay scripted gestures and check expectations
  daydrag config [-save]      print the effective config as TOML
  daydrag help                show this help
`)
}

func loadConfig() (*config.Config, bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return nil, false
	}
	return cfg, true
}

func cliTerm(args []string) int {
	fs := flag.NewFlagSet("term", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "log timeline transitions to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}
	timeline.SetDebug(cfg.Debug || *debug)
	u, err := term.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	if err := u.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func cliReplay(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "log timeline transitions to stderr")
	configFile := fs.String("config", "", "config file (defaults to the user config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "error: replay needs at least one script")
		return 2
	}

	var cfg *config.Config
	if *configFile != "" {
		c, err := config.LoadFile(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}
		cfg = c
	} else {
		c, ok := loadConfig()
		if !ok {
			return 1
		}
		cfg = c
	}
	timeline.SetDebug(cfg.Debug || *debug)

	failed := 0
	for _, path := range fs.Args() {
		sc, err := scenario.Load(path)
		if err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		res, err := scenario.Run(cfg.TimelineConfig(), sc)
		if err != nil {
			fmt.Fprintf(out, "FAIL %v\n", err)
			failed++
			continue
		}
		st := res.Final
		fmt.Fprintf(out, "ok   %s: %d steps, %d scroll requests, %v at y=%.0f h=%.0f, offset %.0f\n",
			res.Name, res.Steps, len(res.Requests), st.Phase, st.Block.Center.Y, st.Block.Height, res.Offset)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func cliConfig(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	save := fs.Bool("save", false, "write the effective config to the config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}
	if err := cfg.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	if *save {
		if err := cfg.Save(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}
		if path, err := config.ConfigPath(); err == nil {
			fmt.Fprintln(os.Stderr, "saved", path)
		}
	}
	return 0
}
