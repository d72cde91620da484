package main

import (
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"deps", "search", "stats", "walk", "impact", "patterns"}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestPersistentFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"data", ""},
		{"format", "json"},
		{"log-format", ""},
		{"log-level", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := rootCmd.PersistentFlags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("persistent flag %q not defined", tt.flag)
			}
			if f.DefValue != tt.want {
				t.Errorf("flag %q default = %q, want %q", tt.flag, f.DefValue, tt.want)
			}
		})
	}
}

func TestCommandFlagDefaults(t *testing.T) {
	tests := []struct {
		command string
		flag    string
		want    string
	}{
		{"deps", "direction", "outbound"},
		{"walk", "direction", "outgoing"},
		{"walk", "depth", "0"},
		{"walk", "limit", "0"},
		{"impact", "depth", "0"},
		{"patterns", "area", ""},
		{"patterns", "feature-type", ""},
		{"patterns", "layer-tables", ""},
	}

	for _, tt := range tests {
		t.Run(tt.command+"/"+tt.flag, func(t *testing.T) {
			var found bool
			for _, c := range rootCmd.Commands() {
				if c.Name() != tt.command {
					continue
				}
				found = true
				f := c.Flags().Lookup(tt.flag)
				if f == nil {
					t.Fatalf("command %q has no flag %q", tt.command, tt.flag)
				}
				if f.DefValue != tt.want {
					t.Errorf("flag %q default = %q, want %q", tt.flag, f.DefValue, tt.want)
				}
			}
			if !found {
				t.Fatalf("command %q not registered", tt.command)
			}
		})
	}
}
