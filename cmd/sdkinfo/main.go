package main

import (
	"fmt"

	"github.com/probekit/buildprobes/telemetry/sdk"
)

func main() {
	fmt.Println(sdk.Initialize())
}
