package main

import "github.com/xll-gen/resgen/cmd"

// main is the entry point of the resgen CLI application.
func main() {
	cmd.Execute()
}
