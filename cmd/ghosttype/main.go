// Package main starts the ghosttype input simulator.
package main

import "flag"

// main is the entrypoint for the ghosttype CLI.
func main() {
	configPath := flag.String("config", "ghosttype.yaml", "Path to the YAML config file")
	flag.Parse()

	if err := run(*configPath, flag.Arg(0)); err != nil {
		logFatal(err)
	}
}
