//go:build !unix && (386 || arm || mips || mipsle)

package greet

// Greeting returns the registry greeting, non-unix 32-bit variant.
func Greeting() string {
	return "hello registry!"
}
