package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	smartcode "github.com/riyaa1611/SmartCode-Demo"
)

func main() {
	var cmd SmartCodeCommand

	cmd.Version = func() {
		fmt.Printf("SmartCode %s\n", smartcode.Version)
		os.Exit(0)
	}

	parser := flags.NewParser(&cmd, flags.HelpFlag|flags.PassDoubleDash)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	handleError(err)
}

func handleError(err error) {
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		} else {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}

		os.Exit(1)
	}
}
