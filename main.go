// Package main is the entry point for the hoopmetrics CLI tool, which imports
// basketball possession logs and computes team and player box scores.
package main

import "github.com/pable/hoopmetrics/cmd"

func main() {
	cmd.Execute()
}
