package cmd

import (
	"strings"
	"testing"
)

func TestResetRejectsUnknownPath(t *testing.T) {
	err := resetCmd.RunE(resetCmd, []string{"no-such-path"})
	if err == nil {
		t.Fatal("expected error for unknown path")
	}
	if !strings.Contains(err.Error(), "unknown path") {
		t.Fatalf("err = %v, want unknown path error", err)
	}
}
