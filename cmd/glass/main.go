package main

import (
	"fmt"

	"rsc.io/quote"
)

func main() {
	fmt.Printf("%s", quote.Glass())
}
