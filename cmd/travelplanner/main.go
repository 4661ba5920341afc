// Command travelplanner asks for a road map and two cities on standard
// input and prints the shortest route between them.
//
// Usage:
//
//	travelplanner [-max-cities N] [-quiet]
//
// The TRAVELPLANNER_MAX_CITIES environment variable sets the capacity when
// -max-cities is not given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/travelplanner/planner"
)

const envMaxCities = "TRAVELPLANNER_MAX_CITIES"

func main() {
	log.SetFlags(0)
	log.SetPrefix("travelplanner: ")

	if err := run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses flags, resolves the configuration and executes one session.
func run(args []string, getenv func(string) string, in io.Reader, out io.Writer) error {
	cfg, err := parseConfig(args, getenv)
	if err != nil {
		return err
	}

	return planner.Run(in, out, cfg)
}

// parseConfig builds the session configuration. An explicit -max-cities
// wins over the environment.
func parseConfig(args []string, getenv func(string) string) (planner.Config, error) {
	cfg := planner.DefaultConfig()

	fs := flag.NewFlagSet("travelplanner", flag.ContinueOnError)
	fs.IntVar(&cfg.MaxCities, "max-cities", cfg.MaxCities, "maximum number of cities accepted")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress prompts")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max-cities" {
			explicit = true
		}
	})
	if v := getenv(envMaxCities); v != "" && !explicit {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s=%q: %w", envMaxCities, v, err)
		}
		cfg.MaxCities = n
	}
	if cfg.MaxCities < 1 {
		return cfg, fmt.Errorf("max cities must be positive, got %d", cfg.MaxCities)
	}

	return cfg, nil
}
