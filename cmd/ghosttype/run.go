// Package main starts the ghosttype input simulator.
package main

import (
	"log"
	"os"
	"time"

	"github.com/frudas24/ghosttype/internal/config"
	"github.com/frudas24/ghosttype/internal/keyinput"
	"github.com/frudas24/ghosttype/internal/script"
	"github.com/frudas24/ghosttype/internal/sim"
)

// run wires the simulator and blocks until the script is fully typed.
func run(configPath, scriptPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scriptPath != "" {
		cfg.ScriptPath = scriptPath
	}
	logStartup(cfg)

	injector, err := keyinput.NewInjector()
	if err != nil {
		return err
	}

	lines, err := script.Load(cfg.ScriptPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d lines", len(lines))
	log.Printf("focus the target window; typing starts in %v", sim.WarmupDelay)

	simulator := sim.New(injector, sim.Options{
		KeyDelay:  time.Duration(cfg.KeyDelayMs) * time.Millisecond,
		LineDelay: time.Duration(cfg.LineDelayMs) * time.Millisecond,
	})
	if err := simulator.Run(lines); err != nil {
		return err
	}

	log.Printf("done")
	return nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and the effective configuration.
func logStartup(cfg config.Config) {
	log.Printf("ghosttype starting")
	logScriptStatus(cfg.ScriptPath)
	log.Printf("key delay: %d ms", cfg.KeyDelayMs)
	log.Printf("line delay: %d ms", cfg.LineDelayMs)
}

// logScriptStatus reports whether the script file is readable.
func logScriptStatus(path string) {
	if fileExists(path) {
		log.Printf("script check: ok (%s)", path)
	} else {
		log.Printf("script check: missing (%s)", path)
	}
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
