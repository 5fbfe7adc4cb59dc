package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/savedata/internal/config"
	"github.com/peterkuimelis/savedata/internal/log"
	savedatamcp "github.com/peterkuimelis/savedata/internal/mcp"
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
	flag.Parse()

	// stdout carries the protocol; diagnostics go to stderr.
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zl, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()

	events := log.NewMemoryLogger()
	roster, err := cfg.NewRoster(events)
	if err != nil {
		zl.Fatal("build roster", zap.Error(err))
	}

	s := server.NewMCPServer("savedata", "1.0.0")
	savedatamcp.RegisterTools(s, savedatamcp.NewSession(roster, events, zl))

	if err := server.ServeStdio(s); err != nil {
		zl.Error("serve stdio", zap.Error(err))
		os.Exit(1)
	}
}
