// Package main is the entrypoint for the fitai command line client.
package main

import "github.com/fitai/fitai/internal/cli"

func main() {
	cli.Execute()
}
