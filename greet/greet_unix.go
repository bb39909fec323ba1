//go:build unix

package greet

// Greeting returns the registry greeting, unix variant.
func Greeting() string {
	return "hello registry!"
}
