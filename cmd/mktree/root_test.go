package main

import (
	"testing"
)

func TestRootCmdSetup(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil after init")
	}
	if rootCmd.Use != "mktree" {
		t.Errorf("expected command Use %q, got %q", "mktree", rootCmd.Use)
	}

	wantSubs := map[string]bool{"version": false, "generate": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := wantSubs[cmd.Name()]; ok {
			wantSubs[cmd.Name()] = true
		}
	}
	for name, found := range wantSubs {
		if !found {
			t.Errorf("%s subcommand not found", name)
		}
	}
}
