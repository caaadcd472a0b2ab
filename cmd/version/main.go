package main

import (
	"encoding/json"
	"fmt"
	"os"

	"oldenera-wiki/pkg/version"
)

func main() {
	command := "info"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "info", "i":
		fmt.Println(version.GetBuildInfo())
	case "current", "c":
		fmt.Println(version.GetVersionString())
	case "json", "j":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(version.Get()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "h", "--help", "-h":
		showHelp()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n", command)
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println(`Usage: version [command]

Commands:
  info, i      Show detailed build information (default)
  current, c   Show the version string
  json, j      Show build information as JSON
  help, h      Show this help`)
}
