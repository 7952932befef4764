// Package main is the entry point for the picroute CLI.
package main

import "picroute/cli"

// version is set by the release build via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
