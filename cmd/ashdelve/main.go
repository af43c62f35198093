// ashdelve runs a local single-player session in the current terminal.
//
//	go build -o ashdelve ./cmd/ashdelve
//	./ashdelve [--seed 12345]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"ashdelve/internal/game"
	"ashdelve/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	seed := flag.Int64("seed", 0, "Dungeon seed (0 picks one from the clock)")
	flag.Parse()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	} else {
		defer func() { _ = shutdown(ctx) }()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	runLog, runErr := game.New(screen, cfg).Run(ctx)
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Println(runLog.Summary())
}
