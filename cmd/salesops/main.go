// Package main is the entry point for the salesops terminal client
package main

import "salesops/internal/cli"

func main() {
	cli.Execute()
}
