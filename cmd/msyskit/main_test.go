// Package main tests for the msyskit CLI entry point.
package main

import (
	"testing"

	"github.com/AndreyAkinshin/msyskit/internal/cli"
	"github.com/AndreyAkinshin/msyskit/pkg/msyskit"
)

// TestMain_VersionFlag verifies the entry point exits cleanly for --version.
func TestMain_VersionFlag(t *testing.T) {
	if code := cli.Run([]string{"--version"}); code != msyskit.ExitSuccess {
		t.Errorf("Run(--version) = %d, want %d", code, msyskit.ExitSuccess)
	}
}

// TestMain_VersionCommand verifies the version subcommand.
func TestMain_VersionCommand(t *testing.T) {
	if code := cli.Run([]string{"version"}); code != msyskit.ExitSuccess {
		t.Errorf("Run(version) = %d, want %d", code, msyskit.ExitSuccess)
	}
}

// TestMain_UnknownCommand verifies an unknown command fails.
func TestMain_UnknownCommand(t *testing.T) {
	if code := cli.Run([]string{"no-such-command"}); code == msyskit.ExitSuccess {
		t.Error("Run(no-such-command) exited 0")
	}
}
