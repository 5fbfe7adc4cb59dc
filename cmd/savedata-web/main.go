package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/peterkuimelis/savedata/internal/config"
	"github.com/peterkuimelis/savedata/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	flag.IntVar(&cfg.WebPort, "port", cfg.WebPort, "HTTP port to listen on")
	flag.StringVar(&cfg.CharactersFile, "characters", cfg.CharactersFile, "path to a characters YAML file (default: built-in table)")
	flag.IntVar(&cfg.DefaultTier, "tier", cfg.DefaultTier, "starting tier (1-15)")
	flag.StringVar(&cfg.RemovalBonus, "removal-bonus", cfg.RemovalBonus, "removal bonus rule: base or base-or-epiphany")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()

	roster, err := cfg.NewRoster(nil)
	if err != nil {
		zl.Fatal("build roster", zap.Error(err))
	}

	srv := web.NewServer(roster, zl)
	addr := fmt.Sprintf(":%d", cfg.WebPort)
	zl.Info("savedata API listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(addr); err != nil {
		zl.Error("listen", zap.Error(err))
		os.Exit(1)
	}
}
