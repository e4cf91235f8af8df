package main

import (
	"testing"

	"miniftp/internal/session"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"localhost", "8080", "put", "report.pdf"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.Args.Host != "localhost" || opts.Args.Port != "8080" ||
		opts.Args.Command != "put" || len(opts.Args.Rest) != 1 {
		t.Errorf("parseArgs = %+v", opts.Args)
	}

	if _, err := parseArgs([]string{"localhost", "8080"}); err == nil {
		t.Error("parseArgs with two args succeeded")
	}
}

func TestCheckHost(t *testing.T) {
	for _, h := range []string{"localhost", "LOCALHOST", "example.com", "127.0.0.1", "my_host-1"} {
		if _, err := checkHost(h); err != nil {
			t.Errorf("checkHost(%q) = %v", h, err)
		}
	}
	for _, h := range []string{"bad host", "host!", "a/b", "host:80"} {
		if _, err := checkHost(h); err == nil {
			t.Errorf("checkHost(%q) succeeded", h)
		}
	}
}

func TestCheckPort(t *testing.T) {
	if n, err := checkPort("8080"); err != nil || n != 8080 {
		t.Errorf("checkPort(8080) = %d, %v", n, err)
	}
	if n, err := checkPort("5"); err != nil || n != 5 {
		t.Errorf("checkPort(5) = %d, %v", n, err)
	}
	for _, p := range []string{"", "123456", "80a0", "-1", "8 0"} {
		if _, err := checkPort(p); err == nil {
			t.Errorf("checkPort(%q) succeeded", p)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	cmd, err := checkCommand("list", nil)
	if err != nil || cmd.Kind != session.List {
		t.Errorf("checkCommand(list) = %+v, %v", cmd, err)
	}
	cmd, err = checkCommand("PUT", []string{"a.txt"})
	if err != nil || cmd.Kind != session.Put || cmd.Filename != "a.txt" {
		t.Errorf("checkCommand(PUT) = %+v, %v", cmd, err)
	}
	cmd, err = checkCommand("get", []string{"b.txt"})
	if err != nil || cmd.Kind != session.Get || cmd.Filename != "b.txt" {
		t.Errorf("checkCommand(get) = %+v, %v", cmd, err)
	}

	if _, err := checkCommand("put", nil); err == nil {
		t.Error("checkCommand(put) without filename succeeded")
	}
	if _, err := checkCommand("get", []string{"a", "b"}); err == nil {
		t.Error("checkCommand(get) with two filenames succeeded")
	}
	if _, err := checkCommand("delete", []string{"a"}); err == nil {
		t.Error("checkCommand(delete) succeeded")
	}
}
