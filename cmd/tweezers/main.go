package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/lukaszgryglicki/tweezers/internal/tweezers"
)

func main() {
	tweezers.Debug = os.Getenv("DEBUG") != ""
	tweezers.RAW = os.Getenv("RAW") != ""
	tweezers.PLOT = os.Getenv("PLOT") != ""
	tweezers.DisableReflection = os.Getenv("NO_REFLECTION") != ""
	if os.Getenv("QUIET") != "" {
		tweezers.ProgressOut = nil
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := "config/tweezers.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := tweezers.Run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
