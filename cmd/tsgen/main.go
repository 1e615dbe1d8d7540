package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	demoCmd := flag.NewFlagSet("demo", flag.ExitOnError)
	demoJSON := demoCmd.Bool("json", false, "emit diagnostics as JSON instead of plain text")

	if len(os.Args) < 2 {
		fmt.Println("expected 'demo' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		if err := demoCmd.Parse(os.Args[2:]); err != nil {
			fmt.Println("failed to parse demo command")
			os.Exit(1)
		}
		if !runDemo(os.Stdout, os.Stderr, *demoJSON) {
			os.Exit(1)
		}
	default:
		fmt.Println("expected 'demo' subcommand")
		os.Exit(1)
	}
}
