// Package main is the entry point for the countroo CLI.
package main

import "countroo.dev/pkg/countroo/cmd"

func main() {
	cmd.Execute()
}
