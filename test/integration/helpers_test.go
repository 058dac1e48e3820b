// Package integration contains integration tests for msyskit.
package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/AndreyAkinshin/msyskit/internal/cli"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
// The result is cached for efficiency since runtime.Caller is relatively expensive.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

// result is the outcome of one CLI run.
type result struct {
	code   int
	stdout string
	stderr string
}

// run executes msyskit from workDir with an empty user config directory
// unless configDir is given.
func run(t *testing.T, workDir, configDir string, args ...string) result {
	t.Helper()
	if configDir == "" {
		configDir = t.TempDir()
	}
	var stdout, stderr bytes.Buffer
	code := cli.ExecuteWith(context.Background(), args, &stdout, &stderr, cli.Options{
		WorkDir:   workDir,
		ConfigDir: configDir,
	})
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}
