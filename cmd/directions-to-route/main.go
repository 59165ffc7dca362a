package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/directions-to-route/config"
	"github.com/theoremus-urban-solutions/directions-to-route/decoder"
	"github.com/theoremus-urban-solutions/directions-to-route/internal"
	"github.com/theoremus-urban-solutions/directions-to-route/persist"
	"github.com/theoremus-urban-solutions/directions-to-route/route"
)

func main() {
	input := flag.String("input", "-", "directions response JSON file, or - for stdin")
	generation := flag.String("generation", "", "API generation of the input: v5|v4 (overrides config)")
	format := flag.String("format", "", "output format: json|record (overrides config)")
	pretty := flag.Bool("pretty", false, "indent the output")
	stepOnly := flag.Bool("step", false, "treat the input as a single step object instead of a full response")
	flag.Parse()

	if err := config.LoadAppConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Config
	if *generation != "" {
		cfg.Decoder.Generation = *generation
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *pretty {
		cfg.Output.Pretty = true
	}

	log, err := internal.NewLogger(cfg.Log.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	data, err := readInput(*input)
	if err != nil {
		log.Fatal("failed to read input", zap.String("input", *input), zap.Error(err))
	}

	d := decoder.New(decoder.Options{PolylinePrecision: cfg.Decoder.PolylinePrecision})

	var steps []*route.RouteStep
	var out any
	switch {
	case *stepOnly && cfg.Decoder.Generation == "v4":
		step, err := d.LegacyStep(data)
		if err != nil {
			log.Fatal("failed to decode legacy step", zap.Error(err))
		}
		steps = []*route.RouteStep{step}
		out = step
	case *stepOnly:
		step, err := d.Step(data)
		if err != nil {
			log.Fatal("failed to decode step", zap.Error(err))
		}
		steps = []*route.RouteStep{step}
		out = step
	case cfg.Decoder.Generation == "v4":
		// Only the legacy step shape is stable across deployments
		log.Fatal("legacy responses are decoded per step; pass -step")
	default:
		resp, err := d.Response(data)
		if err != nil {
			log.Fatal("failed to decode response", zap.Error(err))
		}
		for _, r := range resp.Routes {
			for _, leg := range r.Legs {
				steps = append(steps, leg.Steps...)
			}
		}
		out = resp
	}
	log.Info("decoded input",
		zap.String("generation", cfg.Decoder.Generation),
		zap.Int("steps", len(steps)),
	)

	if cfg.Output.Format == "record" {
		records := make([]persist.Record, len(steps))
		for i, step := range steps {
			records[i] = persist.Marshal(step)
		}
		out = records
	}
	if err := emit(os.Stdout, out, cfg.Output.Pretty); err != nil {
		log.Fatal("failed to write output", zap.Error(err))
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func emit(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
