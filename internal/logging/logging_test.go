package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "atlas.log")
	logger, cleanup, err := Setup(Options{Path: path})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	logger.Info("countries loaded", "count", 2)
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), lines)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "countries loaded" {
		t.Fatalf("msg = %v, want countries loaded", rec["msg"])
	}
	if rec["count"] != float64(2) {
		t.Fatalf("count = %v, want 2", rec["count"])
	}
	if ts, _ := rec["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("time = %q, want UTC timestamp", ts)
	}
}

func TestSetup_EmptyPathFails(t *testing.T) {
	logger, cleanup, err := Setup(Options{Path: " "})
	if err == nil {
		t.Fatalf("Setup returned nil error for empty path")
	}
	if logger == nil || cleanup == nil {
		t.Fatalf("Setup should still return a usable logger and cleanup")
	}
	logger.Info("dropped")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup returned error: %v", err)
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}
	New(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Fatalf("debug record missing: %q", buf.String())
	}
}
