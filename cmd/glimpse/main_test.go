package main

import "testing"

func TestParseValues(t *testing.T) {
	got, err := parseValues([]string{"10", "-3.5"})
	if err != nil {
		t.Fatalf("parseValues: %v", err)
	}
	if len(got) != 2 || got[0] != 10 || got[1] != -3.5 {
		t.Fatalf("parseValues = %v, want [10 -3.5]", got)
	}
}

func TestParseValues_Rejects(t *testing.T) {
	if _, err := parseValues([]string{"2.0", "two"}); err == nil {
		t.Fatalf("parseValues accepted a non-number")
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	if err := generateCompletion("powershell"); err == nil {
		t.Fatalf("generateCompletion accepted an unsupported shell")
	}
}
