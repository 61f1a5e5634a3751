package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "seed":
		err = cmdSeed(os.Args[2:])
	case "token":
		err = cmdToken(os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("shopbazar %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Shop Bazar - storefront administration

Usage:
  shopbazar <command> [arguments]

Commands:
  seed <file.yaml>        Load products and reviews into MongoDB
  token <name> <email>    Print an access token signed with JWT_SECRET
  help                    Show this help message
  version                 Show version information

Configuration is read from the environment and an optional .env file,
the same way the server reads it.

Examples:
  shopbazar seed catalog.yaml
  shopbazar token "Ada" ada@example.com`)
}
