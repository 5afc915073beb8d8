package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseArgsMissingPath(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseArgs(nil, &stderr)
	if err == nil {
		t.Fatal("expected error without a path argument")
	}
	if !strings.Contains(stderr.String(), "Usage: rolexhound") {
		t.Errorf("expected usage output, got %q", stderr.String())
	}
}

func TestParseArgsExtraPositionals(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseArgs([]string{"/tmp/a", "/tmp/b"}, &stderr)
	if err == nil {
		t.Fatal("expected error with two path arguments")
	}
}

func TestParseArgsPathAndFlags(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseArgs([]string{"-debug", "/tmp/watched.txt"}, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "/tmp/watched.txt" {
		t.Errorf("expected path %q, got %q", "/tmp/watched.txt", cfg.Path)
	}
	if !cfg.Debug {
		t.Error("expected debug flag to be set")
	}
}

func TestParseArgsVersionFlag(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseArgs([]string{"-version"}, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.ShowVersion {
		t.Error("expected ShowVersion to be set")
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseArgs([]string{"-bogus", "/tmp/a"}, &stderr)
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(stderr.String(), "flag provided but not defined") {
		t.Errorf("expected unknown flag output, got %q", stderr.String())
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/watched/file.txt", want: "file.txt"},
		{path: "relative.log", want: "relative.log"},
		{path: "a/b/", want: "b"},
		{path: "/a//b", want: "b"},
		{path: ".", want: "."},
		{path: "/", want: ""},
		{path: "////", want: ""},
		{path: "", want: ""},
	}

	for _, tt := range tests {
		if got := baseName(tt.path); got != tt.want {
			t.Errorf("baseName(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
}
