package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/peterkuimelis/savedata/internal/config"
	"github.com/peterkuimelis/savedata/internal/console"
	"github.com/peterkuimelis/savedata/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.CharactersFile, "characters", cfg.CharactersFile, "path to a characters YAML file (default: built-in table)")
	flag.IntVar(&cfg.DefaultTier, "tier", cfg.DefaultTier, "starting tier (1-15)")
	flag.StringVar(&cfg.RemovalBonus, "removal-bonus", cfg.RemovalBonus, "removal bonus rule: base or base-or-epiphany")
	character := flag.String("character", "", "character to start team member 1 with")
	quiet := flag.Bool("quiet", false, "do not print the event log")
	flag.Parse()

	var logger log.EventLogger = log.NewMemoryLogger()
	if !*quiet {
		logger = log.NewTextLogger(os.Stdout)
	}

	roster, err := cfg.NewRoster(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *character != "" {
		if err := roster.SelectCharacter(*character); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Chaos Run save data calculator. Type \"help\" for commands.")
	if err := console.New(roster, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
