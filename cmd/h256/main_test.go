package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/h256/infrastructure/logger"
	"github.com/kaspanet/h256/util/h256"
	"github.com/pkg/errors"
)

const (
	helloHashStr = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	emptyHashStr = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	zeroHashStr  = "0000000000000000000000000000000000000000000000000000000000000000"
)

func run(t *testing.T, args []string, stdin string) (string, error) {
	subCmd, _, config, err := parseCommandLine(args)
	if err != nil {
		t.Fatalf("parseCommandLine(%v): %s", args, err)
	}
	stdout := &bytes.Buffer{}
	err = runCommand(subCmd, config, strings.NewReader(stdin), stdout)
	return stdout.String(), err
}

func TestParseCommandLine(t *testing.T) {
	subCmd, cfg, config, err := parseCommandLine([]string{"--loglevel", "debug", "sort", "-u"})
	if err != nil {
		t.Fatalf("parseCommandLine: %s", err)
	}
	if subCmd != sortSubCmd {
		t.Errorf("expected sub-command %s, got %s", sortSubCmd, subCmd)
	}
	if cfg.LogLevel != logger.LevelDebug {
		t.Errorf("expected log level %s, got %s", logger.LevelDebug, cfg.LogLevel)
	}
	if !config.(*sortConfig).Unique {
		t.Errorf("expected --unique to be set")
	}

	_, cfg, _, err = parseCommandLine([]string{"parse", zeroHashStr})
	if err != nil {
		t.Fatalf("parseCommandLine: %s", err)
	}
	if cfg.LogLevel != logger.LevelWarn {
		t.Errorf("expected default log level %s, got %s", logger.LevelWarn, cfg.LogLevel)
	}

	invalidArgs := [][]string{
		{},
		{"unknown"},
		{"parse"},
		{"compare", zeroHashStr},
		{"--loglevel", "loud", "sum"},
	}
	for _, args := range invalidArgs {
		_, _, _, err := parseCommandLine(args)
		if err == nil {
			t.Errorf("parseCommandLine(%v): expected an error", args)
		}
	}

	_, _, _, err = parseCommandLine([]string{"--help"})
	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
		t.Errorf("expected ErrHelp for --help, got %v", err)
	}
}

func TestSum(t *testing.T) {
	output, err := run(t, []string{"sum"}, "hello")
	if err != nil {
		t.Fatalf("sum: %s", err)
	}
	if output != helloHashStr+"  -\n" {
		t.Errorf("sum: unexpected output %q", output)
	}

	dir := t.TempDir()
	helloFile := filepath.Join(dir, "hello.txt")
	emptyFile := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(helloFile, []byte("hello"), 0600); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	if err := os.WriteFile(emptyFile, nil, 0600); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}

	output, err = run(t, []string{"sum", helloFile, emptyFile}, "")
	if err != nil {
		t.Fatalf("sum: %s", err)
	}
	expected := helloHashStr + "  " + helloFile + "\n" + emptyHashStr + "  " + emptyFile + "\n"
	if output != expected {
		t.Errorf("sum: expected %q, got %q", expected, output)
	}

	_, err = run(t, []string{"sum", filepath.Join(dir, "missing")}, "")
	if err == nil {
		t.Errorf("sum: expected an error for a missing file")
	}
}

func TestParse(t *testing.T) {
	output, err := run(t, []string{"parse", strings.ToUpper(helloHashStr), zeroHashStr}, "")
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if output != helloHashStr+"\n"+zeroHashStr+"\n" {
		t.Errorf("parse: unexpected output %q", output)
	}

	_, err = run(t, []string{"parse", zeroHashStr, zeroHashStr[:62]}, "")
	if !errors.Is(err, h256.ErrInvalidHexLength) {
		t.Errorf("parse: expected ErrInvalidHexLength, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "#2") {
		t.Errorf("parse: expected the failing index in %q", err)
	}

	_, err = run(t, []string{"parse", "zz" + zeroHashStr[2:]}, "")
	if !errors.Is(err, h256.ErrInvalidHexEncoding) {
		t.Errorf("parse: expected ErrInvalidHexEncoding, got %v", err)
	}
}

func TestSort(t *testing.T) {
	input := strings.Join([]string{helloHashStr, "", zeroHashStr, "  " + emptyHashStr + "  ", zeroHashStr}, "\n")

	output, err := run(t, []string{"sort"}, input)
	if err != nil {
		t.Fatalf("sort: %s", err)
	}
	expected := strings.Join([]string{zeroHashStr, zeroHashStr, helloHashStr, emptyHashStr}, "\n") + "\n"
	if output != expected {
		t.Errorf("sort: expected %q, got %q", expected, output)
	}

	output, err = run(t, []string{"sort", "--unique"}, input)
	if err != nil {
		t.Fatalf("sort: %s", err)
	}
	expected = strings.Join([]string{zeroHashStr, helloHashStr, emptyHashStr}, "\n") + "\n"
	if output != expected {
		t.Errorf("sort --unique: expected %q, got %q", expected, output)
	}

	output, err = run(t, []string{"sort"}, "")
	if err != nil || output != "" {
		t.Errorf("sort of empty input: got %q, %v", output, err)
	}

	_, err = run(t, []string{"sort"}, zeroHashStr+"\nnot a hash\n")
	if !errors.Is(err, h256.ErrInvalidHexEncoding) {
		t.Errorf("sort: expected ErrInvalidHexEncoding, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "line 2") {
		t.Errorf("sort: expected the failing line in %q", err)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		first    string
		second   string
		expected string
	}{
		{zeroHashStr, helloHashStr, "-1\n"},
		{helloHashStr, zeroHashStr, "1\n"},
		{helloHashStr, strings.ToUpper(helloHashStr), "0\n"},
	}

	for _, test := range tests {
		output, err := run(t, []string{"compare", test.first, test.second}, "")
		if err != nil {
			t.Fatalf("compare: %s", err)
		}
		if output != test.expected {
			t.Errorf("compare %s %s: expected %q, got %q", test.first, test.second, test.expected, output)
		}
	}

	_, err := run(t, []string{"compare", zeroHashStr, "00"}, "")
	if !errors.Is(err, h256.ErrInvalidHexLength) {
		t.Errorf("compare: expected ErrInvalidHexLength, got %v", err)
	}
}

func TestUniqueSorted(t *testing.T) {
	hello := h256.Sha256([]byte("hello"))
	tests := []struct {
		in       []h256.H256
		expected []h256.H256
	}{
		{nil, nil},
		{[]h256.H256{h256.Zero}, []h256.H256{h256.Zero}},
		{[]h256.H256{h256.Zero, h256.Zero, hello, hello}, []h256.H256{h256.Zero, hello}},
	}

	for i, test := range tests {
		result := uniqueSorted(h256.Clone(test.in))
		if !h256.AreEqual(result, test.expected) {
			t.Errorf("test #%d: expected %v, got %v", i, h256.Strings(test.expected), h256.Strings(result))
		}
	}
}
