// Package main is the entry point for the helmetscan CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The helmetscan tool fetches the
// Virginia Tech bicycle helmet safety dataset and filters it from the
// command line.
package main

import "github.com/velosafe/helmetscan/cmd"

// main initializes and runs the helmetscan CLI application.
//
// It delegates all flag parsing and execution to the cmd package, which
// handles the query on the root command plus the version and config
// subcommands.
func main() {
	cmd.Execute()
}
