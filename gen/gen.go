// Package gen writes the source of a sample main package whose only
// behavior is to print a fixed line. Build tools run it through
// "go generate" to verify that generated code makes it into the build.
package gen

import (
	"fmt"
	"os"
)

// GeneratedLine is the one line the generated program prints.
const GeneratedLine = "This is a generated line"

const header = "// Code generated by cmd/genmain. DO NOT EDIT."

// Source returns the full source of the generated main package.
func Source() string {
	return fmt.Sprintf(`%s

package main

import "fmt"

func main() {
	fmt.Println(%q)
}
`, header, GeneratedLine)
}

// WriteMain writes the generated main package source to path.
func WriteMain(path string) error {
	return os.WriteFile(path, []byte(Source()), 0644)
}
