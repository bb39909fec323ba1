package test

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// buildAndRunOutput builds one of this module's command packages,
// runs the binary with args, and returns its stdout.
func buildAndRunOutput(t *testing.T, pkg string, args ...string) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), filepath.Base(pkg))
	if runtime.GOOS == "windows" {
		binary += ".exe"
	}

	buildCmd := exec.Command("go", "build", "-o", binary, pkg)
	// tests run with the package dir as cwd, the module root is one up
	buildCmd.Dir = ".."
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build %s: %v\n%s", pkg, err, buildOutput)
	}

	output, err := exec.Command(binary, args...).Output()
	if err != nil {
		t.Fatalf("run %s: %v", pkg, err)
	}
	return string(output)
}
