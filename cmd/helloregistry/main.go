package main

import (
	"fmt"

	"github.com/probekit/buildprobes/greet"
)

func main() {
	fmt.Println(greet.Greeting())
}
