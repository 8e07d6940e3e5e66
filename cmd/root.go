package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/svalder/sntools/flux"
	"github.com/svalder/sntools/format"
	"github.com/svalder/sntools/gen"
	"github.com/svalder/sntools/gen/ibd"
)

var (
	// CLI flags for the generation run
	fluxKind    string    // flux model kind: gamma or constant
	fluxFile    string    // path to the tabulated flux parameter file (gamma kind)
	fluxDensity float64   // spectral density of the constant kind
	fluxWindow  []float64 // start,end window in ms of the constant kind
	channel     string    // interaction channel name
	detector    string    // detector preset id (resolved via detectors.yaml)
	targetMass  float64   // detector water mass in kt; overrides the preset
	distance    float64   // source distance in kpc
	seed        string    // random seed (integer or string)
	binWidth    float64   // time bin width in ms
	outFormat   string    // output format: nuance or json
	outPath     string    // output file; "-" for stdout
	logLevel    string    // log verbosity level
)

// Conversion constants for the flux normalization.
const (
	cmPerKpc        = 3.0857e21
	gramsPerKt      = 1e9
	molarMassWater  = 18.0153 // g/mol
	avogadroNumber  = 6.02214e23
	detectorsConfig = "detectors.yaml"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sntools",
	Short: "Supernova neutrino event generator for detector simulations",
}

// generateCmd runs one event-generation pass using parameters from CLI flags
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate interaction events from a time-dependent flux",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		fluxModel, err := buildFlux(fluxKind, fluxFile, fluxDensity, fluxWindow)
		if err != nil {
			logrus.Fatalf("Configuring flux: %v", err)
		}

		var ch gen.Channel
		var targetsPerMolecule float64
		switch channel {
		case "ibd":
			ch = ibd.New()
			targetsPerMolecule = ibd.TargetsPerMolecule
		default:
			logrus.Fatalf("Unknown interaction channel %q", channel)
		}

		mass := targetMass
		if mass == 0 {
			mass, err = GetDetectorMass(detectorsConfig, detector)
			if err != nil {
				logrus.Fatalf("Resolving detector %q: %v", detector, err)
			}
		}

		// Scale factor: number of target particles over the flux dilution
		// sphere at the source distance.
		targets := mass * gramsPerKt / molarMassWater * avogadroNumber * targetsPerMolecule
		dCm := distance * cmPerKpc
		scale := targets / (4 * math.Pi * dCm * dCm)

		logrus.Infof("Starting generation: channel=%s, detector mass=%g kt, distance=%g kpc, seed=%q",
			channel, mass, distance, seed)
		startTime := time.Now()

		events, err := gen.GenEvents(ch, fluxModel, gen.Config{
			Scale:    scale,
			Seed:     seed,
			BinWidth: binWidth,
		})
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}

		out := os.Stdout
		if outPath != "-" {
			out, err = os.Create(outPath)
			if err != nil {
				logrus.Fatalf("Creating output file: %v", err)
			}
			defer out.Close()
		}
		switch outFormat {
		case "nuance":
			err = format.WriteNuance(out, events)
		case "json":
			err = format.WriteJSON(out, events)
		default:
			logrus.Fatalf("Unknown output format %q", outFormat)
		}
		if err != nil {
			logrus.Fatalf("Writing events: %v", err)
		}

		logrus.Infof("Wrote %d events in %v.", len(events), time.Since(startTime).Round(time.Millisecond))
	},
}

// buildFlux constructs the flux model selected by --flux.
func buildFlux(kind, file string, density float64, window []float64) (gen.Flux, error) {
	switch kind {
	case "gamma":
		if file == "" {
			return nil, fmt.Errorf("flux kind %q needs --flux-file", kind)
		}
		return flux.LoadGamma(file)
	case "constant":
		if len(window) != 2 || window[1] <= window[0] {
			return nil, fmt.Errorf("--flux-window needs start,end with start < end, got %v", window)
		}
		return flux.Constant{Density: density, Start: window[0], End: window[1]}, nil
	default:
		return nil, fmt.Errorf("unknown flux kind %q", kind)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	generateCmd.Flags().StringVar(&fluxKind, "flux", "gamma", "Flux model kind (gamma, constant)")
	generateCmd.Flags().StringVar(&fluxFile, "flux-file", "", "Tabulated flux parameter file (time, luminosity, meanE, alpha)")
	generateCmd.Flags().Float64Var(&fluxDensity, "flux-density", 1, "Spectral density for the constant flux kind")
	generateCmd.Flags().Float64SliceVar(&fluxWindow, "flux-window", []float64{0, 1000}, "Time window in ms for the constant flux kind")
	generateCmd.Flags().StringVar(&channel, "channel", "ibd", "Interaction channel")
	generateCmd.Flags().StringVar(&detector, "detector", "HyperK", "Detector preset id from detectors.yaml")
	generateCmd.Flags().Float64Var(&targetMass, "target-mass", 0, "Detector water mass in kt (overrides --detector)")
	generateCmd.Flags().Float64Var(&distance, "distance", 10, "Source distance in kpc")
	generateCmd.Flags().StringVar(&seed, "seed", "42", "Random seed (integer or string)")
	generateCmd.Flags().Float64Var(&binWidth, "bin-width", 1, "Time bin width in ms")
	generateCmd.Flags().StringVar(&outFormat, "format", "nuance", "Output format (nuance, json)")
	generateCmd.Flags().StringVar(&outPath, "output", "-", "Output file, or - for stdout")
	generateCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(generateCmd)
}
