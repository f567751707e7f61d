// Package main provides gen-presets, the build-time compiler that turns a
// tree of preset definition documents into the generated Go catalog used
// by preset.Default.
//
// Typical use is through go:generate in the preset package:
//
//	go run ../cmd/gen-presets -in ../presets -o zz_generated_presets.go -pkg preset
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/mediacore/internal/logging"
	"github.com/opd-ai/mediacore/preset"
)

// CLI configuration
type CLIConfig struct {
	inputDir    string
	outputFile  string
	packageName string
	workers     int
	timeout     time.Duration
	logLevel    string
	logJSON     bool
	verbose     bool
}

var errMissingFlag = errors.New("missing required flag")

// parseCLIFlags parses args into a configuration.
func parseCLIFlags(args []string) (*CLIConfig, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("gen-presets", flag.ContinueOnError)

	fs.StringVar(&config.inputDir, "in", "presets", "Preset definition directory")
	fs.StringVar(&config.outputFile, "o", "zz_generated_presets.go", "Generated Go file")
	fs.StringVar(&config.packageName, "pkg", "preset", "Package name of the generated file")
	fs.IntVar(&config.workers, "workers", preset.DefaultOptions().Workers, "Documents parsed concurrently")
	fs.DurationVar(&config.timeout, "timeout", time.Minute, "Overall compile timeout")
	fs.StringVar(&config.logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&config.logJSON, "log-json", false, "Log as JSON")
	fs.BoolVar(&config.verbose, "v", false, "Shorthand for -log-level DEBUG")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if config.inputDir == "" {
		return nil, fmt.Errorf("%w: -in", errMissingFlag)
	}
	if config.outputFile == "" {
		return nil, fmt.Errorf("%w: -o", errMissingFlag)
	}
	if config.verbose {
		config.logLevel = "DEBUG"
	}
	return config, nil
}

// run compiles the preset tree and writes the generated file. Nothing is
// written unless compilation and generation both succeed.
func run(ctx context.Context, config *CLIConfig) error {
	log := logging.New("main", "run").WithFields(logrus.Fields{
		"in":  config.inputDir,
		"out": config.outputFile,
		"pkg": config.packageName,
	})

	abs, err := filepath.Abs(config.inputDir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", config.inputDir, err)
	}
	// Rooting the FS at the parent keeps the directory name in document
	// paths, so the digest does not depend on where the tree is checked out.
	fsys := os.DirFS(filepath.Dir(abs))
	root := filepath.Base(abs)

	ctx, cancel := context.WithTimeout(ctx, config.timeout)
	defer cancel()

	c, err := preset.Compile(ctx, fsys, root, preset.Options{Workers: config.workers})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := preset.Generate(&buf, c, preset.GenerateOptions{Package: config.packageName}); err != nil {
		return err
	}
	if err := writeFile(config.outputFile, buf.Bytes()); err != nil {
		return err
	}

	if len(c.Entries) == 0 {
		log.Warn("No preset documents found")
	}
	log.WithFields(logrus.Fields{
		"entries": len(c.Entries),
		"digest":  c.DigestHex(),
	}).Info("Generated preset catalog")
	return nil
}

// writeFile replaces name through a temporary file in the same directory.
func writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), ".gen-presets-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

func main() {
	config, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "gen-presets: %v\n", err)
		os.Exit(2)
	}
	if err := logging.Configure(config.logLevel, config.logJSON, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "gen-presets: %v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), config); err != nil {
		logging.WithCaller(logging.New("main", "main")).WithError(err).Error("Preset generation failed")
		os.Exit(1)
	}
}
