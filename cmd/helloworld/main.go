package main

import (
	"fmt"

	"github.com/probekit/buildprobes/ascii"
)

func main() {
	myStr, err := ascii.FromString("Hello, world!")
	if err != nil {
		// the literal is pure ASCII, so this branch is unreachable
		panic(err)
	}
	fmt.Println(myStr)
}
