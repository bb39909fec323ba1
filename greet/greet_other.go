//go:build !unix && !386 && !arm && !mips && !mipsle

package greet

// Greeting returns the registry greeting, fallback variant.
func Greeting() string {
	return "hello registry!"
}
