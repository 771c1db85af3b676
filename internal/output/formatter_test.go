package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// captureStdout captures stdout during function execution
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Also set color output to the same writer
	color.Output = w

	f()

	w.Close()
	os.Stdout = old
	color.Output = os.Stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestJSON(t *testing.T) {
	data := map[string]interface{}{
		"key":    "DB_HOST",
		"action": "create",
	}

	out := captureStdout(func() {
		_ = JSON(data)
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("JSON output is invalid: %v", err)
	}
	if result["key"] != "DB_HOST" {
		t.Errorf("expected key DB_HOST, got %v", result["key"])
	}
	if result["action"] != "create" {
		t.Errorf("expected action create, got %v", result["action"])
	}
}

func TestTable(t *testing.T) {
	out := captureStdout(func() {
		Table(
			[]string{"KEY", "TYPE", "PROTECTED"},
			[][]string{
				{"DB_HOST", "env_var", "no"},
				{"DEPLOY_KEY", "file", "yes"},
			},
		)
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}
	if !strings.Contains(lines[0], "KEY") || !strings.Contains(lines[0], "PROTECTED") {
		t.Errorf("header line missing columns: %q", lines[0])
	}
	if !strings.Contains(lines[2], "DB_HOST") {
		t.Errorf("first row missing DB_HOST: %q", lines[2])
	}

	// Empty headers produce no output
	empty := captureStdout(func() {
		Table(nil, nil)
	})
	if empty != "" {
		t.Errorf("expected no output for empty headers, got %q", empty)
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		fn     func()
		prefix string
	}{
		{"success", func() { Success("created %s", "DB_HOST") }, "✓ created DB_HOST"},
		{"error", func() { Error("failed %s", "DB_HOST") }, "✗ failed DB_HOST"},
		{"warn", func() { Warn("skipping %s", "DB_HOST") }, "! skipping DB_HOST"},
		{"info", func() { Info("fetching %s", "DB_HOST") }, "→ fetching DB_HOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(tt.fn)
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, out)
			}
		})
	}
}

func TestDiffLines(t *testing.T) {
	out := captureStdout(func() {
		Added("NEW_VAR")
		Removed("OLD_VAR")
		Changed("MOD_VAR", "")
		Changed("PROT_VAR", "protected")
	})

	want := []string{
		"  + NEW_VAR",
		"  - OLD_VAR",
		"  ~ MOD_VAR",
		"  ~ PROT_VAR (protected)",
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), out)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		value    string
		masked   bool
		expected string
	}{
		{"secret", true, "[MASKED]"},
		{"", true, "[MASKED]"},
		{"", false, "(empty)"},
		{"plain", false, "plain"},
	}

	for _, tt := range tests {
		if got := Redact(tt.value, tt.masked); got != tt.expected {
			t.Errorf("Redact(%q, %v) = %q, want %q", tt.value, tt.masked, got, tt.expected)
		}
	}
}
