package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/op/go-logging.v1"

	"github.com/tuneinsight/isostrategy/config"
	"github.com/tuneinsight/isostrategy/log"
	"github.com/tuneinsight/isostrategy/strategy"
	"github.com/tuneinsight/isostrategy/utils"
	"github.com/tuneinsight/isostrategy/utils/sampling"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"
)

var formats = []string{formatText, formatJSON, formatCBOR}

type generateOptions struct {
	ConfigFile string
	Preset     string
	LeafCount  int
	MulCost    float64
	IsoCost    float64
	// CostsSet is set when --mul or --iso is given explicitly.
	CostsSet   bool
	Format     string
	LogLevel   string
	LogFile    string
}

// config merges the command line options into a validated configuration.
func (opts *generateOptions) config() (cfg *config.Config, err error) {
	if opts.CostsSet && opts.LeafCount == 0 {
		return nil, errors.New("--mul and --iso require --leaves")
	}

	switch {
	case opts.ConfigFile != "":
		if opts.Preset != "" || opts.LeafCount != 0 {
			return nil, errors.New("--config is mutually exclusive with --preset and --leaves")
		}
		if cfg, err = config.LoadFile(opts.ConfigFile); err != nil {
			return nil, err
		}
	case opts.Preset != "":
		if opts.LeafCount != 0 {
			return nil, errors.New("--preset is mutually exclusive with --leaves")
		}
		cfg = &config.Config{Strategy: []*config.Strategy{{Preset: opts.Preset}}}
	case opts.LeafCount != 0:
		cfg = &config.Config{Strategy: []*config.Strategy{{
			LeafCount: opts.LeafCount,
			MulCost:   opts.MulCost,
			IsoCost:   opts.IsoCost,
		}}}
	default:
		cfg = &config.Config{}
	}

	if cfg.Logging == nil {
		cfg.Logging = &config.Logging{}
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}

	return cfg, cfg.FixupAndValidate()
}

// entry is the json and cbor output of one parameter set.
type entry struct {
	Name     string
	Digest   string
	Strategy *strategy.Strategy
}

func runGenerate(w io.Writer, opts *generateOptions) error {

	if !utils.IsInSlice(opts.Format, formats) {
		return fmt.Errorf("invalid format '%v', must be one of %v", opts.Format, formats)
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}

	backend, err := log.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Disable)
	if err != nil {
		return err
	}
	defer backend.Close()
	logger := backend.GetLogger("generate")

	named, err := cfg.Parameters()
	if err != nil {
		return err
	}

	params := make([]strategy.Parameters, len(named))
	for i := range named {
		params[i] = named[i].Parameters
		logger.Debugf("%s: %d leaves, mulCost=%v, isoCost=%v", named[i].Name, params[i].LeafCount(), params[i].MulCost(), params[i].IsoCost())
	}

	start := time.Now()
	strategies, err := strategy.GenerateMany(params...)
	if err != nil {
		return err
	}
	logger.Infof("computed %d strategies in %v", len(strategies), time.Since(start))

	switch opts.Format {
	case formatText:
		return writeReports(w, named, strategies)
	default:
		entries := make([]entry, len(strategies))
		for i, s := range strategies {
			digest := s.Digest()
			entries[i] = entry{Name: named[i].Name, Digest: hex.EncodeToString(digest[:]), Strategy: s}
		}
		if opts.Format == formatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		return cbor.NewEncoder(w).Encode(entries)
	}
}

func writeReports(w io.Writer, named []config.NamedParameters, strategies []*strategy.Strategy) error {
	for i, s := range strategies {
		report, err := strategy.NewReport(s)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "[%s] %s", named[i].Name, report); err != nil {
			return err
		}
	}
	return nil
}

type sweepOptions struct {
	LeafCount int
	MulCost   float64
	Ratios    []float64
	Random    int
	Seed      string
	Min       float64
	Max       float64
	LogLevel  string
	LogFile   string
}

func (opts *sweepOptions) ratios(logger *logging.Logger) (ratios []float64, err error) {

	if opts.Random == 0 {
		if len(opts.Ratios) == 0 {
			return nil, errors.New("no ratios given, use --ratios or --random")
		}
		return opts.Ratios, nil
	}

	if len(opts.Ratios) != 0 {
		return nil, errors.New("--ratios is mutually exclusive with --random")
	}

	var prng sampling.PRNG
	if opts.Seed != "" {
		if prng, err = sampling.NewKeyedPRNG([]byte(opts.Seed)); err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
	} else {
		logger.Notice("no seed given, the ratios are not reproducible")
		if prng, err = sampling.NewPRNG(); err != nil {
			return nil, err
		}
	}

	return strategy.RandomRatios(prng, opts.Random, opts.Min, opts.Max)
}

func runSweep(w io.Writer, opts *sweepOptions) error {

	level := opts.LogLevel
	if level == "" {
		level = config.DefaultLogLevel
	}

	backend, err := log.New(opts.LogFile, level, false)
	if err != nil {
		return err
	}
	defer backend.Close()
	logger := backend.GetLogger("sweep")

	ratios, err := opts.ratios(logger)
	if err != nil {
		return err
	}

	start := time.Now()
	strategies, err := strategy.Sweep(opts.LeafCount, opts.MulCost, ratios)
	if err != nil {
		return err
	}
	logger.Infof("computed %d strategies in %v", len(strategies), time.Since(start))

	if _, err = fmt.Fprintf(w, "%10s %12s %16s %8s %8s  %s\n", "ratio", "iso", "cost", "mul ops", "iso ops", "digest"); err != nil {
		return err
	}

	for i, s := range strategies {
		digest := s.Digest()
		if _, err = fmt.Fprintf(w, "%10.4f %12.4f %16.4f %8d %8d  %x\n", ratios[i], s.Parameters.IsoCost(), s.Cost, s.Ops.Mul, s.Ops.Iso, digest[:8]); err != nil {
			return err
		}
	}

	return nil
}

// parseSequence parses a comma-separated list of integers.
func parseSequence(s string) (seq []int, err error) {
	fields := strings.Split(s, ",")
	seq = make([]int, len(fields))
	for i, f := range fields {
		if seq[i], err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
			return nil, fmt.Errorf("invalid sequence element %d: %w", i+1, err)
		}
	}
	return
}

func runWalk(w io.Writer, arg string, mul, iso float64) error {

	seq, err := parseSequence(arg)
	if err != nil {
		return err
	}

	ops, err := strategy.Walk(seq)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "leaves:              %d\nmultiplications:     %d\nisogeny evaluations: %d\n", len(seq), ops.Mul, ops.Iso); err != nil {
		return err
	}

	if mul != 0 || iso != 0 {
		_, err = fmt.Fprintf(w, "cost:                %g\n", ops.Units(mul, iso))
	}

	return err
}
