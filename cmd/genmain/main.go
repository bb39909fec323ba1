package main

import (
	"fmt"
	"os"

	"github.com/probekit/buildprobes/gen"
)

// usage:
//   genmain [-o main.go]

func main() {
	args := os.Args[1:]
	output := "main.go"
	nArg := len(args)
	for i := 0; i < nArg; i++ {
		arg := args[i]
		if arg == "-o" {
			if i+1 >= nArg {
				fmt.Fprintf(os.Stderr, "-o requires a path\n")
				os.Exit(1)
			}
			i++
			output = args[i]
			continue
		}
		fmt.Fprintf(os.Stderr, "unrecognized flag: %s\n", arg)
		os.Exit(1)
	}

	err := gen.WriteMain(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
