package main

import (
	"bytes"
	"io"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestTranslateRoutesOnFirstToken(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"fn\tid(x) { return x }", "def id(x):\n    return x\n"},
		{"  fn f() {}", "def f():\n    pass\n"},
		{"fn", "expected function name"},
		{"fn add(a, b", "expected `)` to close the parameter list"},
		{"fnord + 1", "fnord + 1\n"},
		{`"open`, "unterminated string"},
	}

	for i, tt := range tests {
		var out bytes.Buffer
		translate(&out, tt.line, false)

		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("tests[%d] %q - expected %q in:\n%s", i, tt.line, tt.want, out.String())
		}
	}
}

// memoryHistory stands in for the line editor's history
type memoryHistory struct {
	lines []string
	err   error
}

func (h *memoryHistory) ReadHistory(r io.Reader) (int, error) {
	if h.err != nil {
		return 0, h.err
	}

	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return 0, err
	}

	h.lines = strings.Split(strings.TrimSpace(string(buf)), "\n")
	return len(h.lines), nil
}

func (h *memoryHistory) WriteHistory(w io.Writer) (int, error) {
	if h.err != nil {
		return 0, h.err
	}

	_, err := io.WriteString(w, strings.Join(h.lines, "\n")+"\n")
	return len(h.lines), err
}

func TestHistoryRoundTrip(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	filename := filepath.Join(t.TempDir(), "history")

	loadHistory(&memoryHistory{}, filename, logger)
	if logs.Len() != 0 {
		t.Fatalf("a missing history file should be silent, got %q", logs.String())
	}

	saveHistory(&memoryHistory{lines: []string{"1 + 2", "fn f() {}"}}, filename, logger)

	restored := &memoryHistory{}
	loadHistory(restored, filename, logger)

	if len(restored.lines) != 2 || restored.lines[1] != "fn f() {}" {
		t.Fatalf("unexpected history %q", restored.lines)
	}

	if !strings.Contains(logs.String(), "saved 2 history line(s)") || !strings.Contains(logs.String(), "loaded 2 history line(s)") {
		t.Fatalf("unexpected log:\n%s", logs.String())
	}
}

func TestHistoryFailuresAreLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	filename := filepath.Join(t.TempDir(), "history")

	broken := &memoryHistory{err: errors.New("line too long")}

	saveHistory(broken, filename, logger)
	if !strings.Contains(logs.String(), "could not write history to '"+filename+"': line too long") {
		t.Fatalf("missing write failure in:\n%s", logs.String())
	}

	logs.Reset()

	loadHistory(broken, filename, logger)
	if !strings.Contains(logs.String(), "could not read history from '"+filename+"': line too long") {
		t.Fatalf("missing read failure in:\n%s", logs.String())
	}

	logs.Reset()

	saveHistory(&memoryHistory{}, filepath.Join(filename, "missing", "dir"), logger)
	if !strings.Contains(logs.String(), "could not create history") {
		t.Fatalf("missing create failure in:\n%s", logs.String())
	}
}
