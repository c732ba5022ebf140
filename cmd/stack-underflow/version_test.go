package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joestump/stack-underflow/internal/build"
)

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), build.Version) {
		t.Errorf("output %q missing version %q", out.String(), build.Version)
	}
}

func TestOpenStore(t *testing.T) {
	s, err := openStore("")
	if err != nil {
		t.Fatalf("open embedded: %v", err)
	}
	if s.Questions.Len() != 3 {
		t.Errorf("seeded questions = %d, want 3", s.Questions.Len())
	}

	if _, err := openStore(t.TempDir() + "/missing.json"); err == nil {
		t.Error("expected error for missing seed file")
	}
}
