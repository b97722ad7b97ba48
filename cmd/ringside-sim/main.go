package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ericogr/ringside/internal/config"
	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/logging"
	"github.com/ericogr/ringside/internal/sim"
	"github.com/ericogr/ringside/internal/version"
)

func main() {
	n := flag.Int("n", 1000, "number of matches to simulate")
	seed := flag.Int64("seed", 0, "random seed (0 picks one)")
	catalogPath := flag.String("config", os.Getenv(constants.EnvConfig), "catalog file (.json/.yaml); empty uses the built-in roster")
	quiet := flag.Bool("quiet", false, "skip printing the first match log")
	flag.Parse()
	defer logging.Sync()

	if *n < 1 {
		logging.Fatal("n must be positive", nil, logging.Fields{"n": *n})
	}
	cfg, err := config.LoadCatalog(*catalogPath)
	if err != nil {
		logging.Fatal("Missing or invalid ringside configuration", err, logging.Fields{"config_path": *catalogPath})
	}
	if *seed == 0 {
		if *seed, err = engine.NewSeed(); err != nil {
			logging.Fatal("Failed to seed random source", err, nil)
		}
	}

	summary, err := sim.Run(cfg.Catalog, *seed, *n)
	if err != nil {
		logging.Fatal("Simulation failed", err, logging.Fields{"seed": *seed})
	}

	fmt.Printf("ringside-sim %s\n", version.Current())
	fmt.Printf("Simulated %d matches (seed %d)\n\n", summary.Matches, *seed)
	if !*quiet {
		fmt.Printf("--- First match ---\n")
		for _, line := range summary.FirstLog {
			fmt.Println(line)
		}
		fmt.Println()
	}

	fmt.Printf("--- Fighters ---\n")
	for _, f := range summary.Ranked() {
		fmt.Printf("%-12s %4d / %-4d  %5.1f%%\n", f.Name, f.Wins, f.Matches, f.WinRate()*100)
	}
	fmt.Printf("\n--- Finishes ---\n")
	fmt.Printf("pinfall: %d  submission: %d\n", summary.Pinfalls, summary.Submissions)
	fmt.Printf("\n--- Turns to decide ---\n")
	fmt.Printf("min: %d  50th: %d  68th: %d  95th: %d  max: %d\n",
		summary.Percentile(0), summary.Percentile(0.5), summary.Percentile(0.68),
		summary.Percentile(0.95), summary.Percentile(1))
}
