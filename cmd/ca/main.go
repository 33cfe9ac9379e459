package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ca1d/internal/app"
	"ca1d/internal/core"
	"ca1d/internal/driver"
	_ "ca1d/internal/sims/elementary"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	stepper, ok := sim.(driver.Stepper)
	if !ok {
		log.Fatalf("sim %q cannot render text", sim.Name())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("%s: width %d, rule %s, boundary %s, every %v", sim.Name(), cfg.Width, cfg.Rule, cfg.Boundary, cfg.Interval)
	if err := driver.Run(ctx, stepper, os.Stdout, cfg.Interval, cfg.Generations); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
