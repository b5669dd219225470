package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "atlas.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "not json",
			expected: "not json",
		},
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
		{
			name:     "record with attrs",
			input:    `{"time":"2025-10-08T21:01:05.123Z","level":"INFO","msg":"countries loaded","count":250,"endpoint":"https://restcountries.com/v3.1/all"}`,
			expected: "2025-10-08 21:01:05 INFO countries loaded count=250 endpoint=https://restcountries.com/v3.1/all",
		},
		{
			name:     "quoted string attr",
			input:    `{"time":"2025-10-08T21:01:05Z","level":"ERROR","msg":"fetch failed","error":"status 503: Service Unavailable"}`,
			expected: `2025-10-08 21:01:05 ERROR fetch failed error="status 503: Service Unavailable"`,
		},
		{
			name:     "unparsable time kept",
			input:    `{"time":"yesterday","level":"warn","msg":"odd"}`,
			expected: "yesterday WARN odd",
		},
		{
			name:     "nested and fractional values",
			input:    `{"msg":"m","ratio":0.5,"meta":{"a":1},"missing":null}`,
			expected: `m meta={"a":1} missing=null ratio=0.5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParse_Level(t *testing.T) {
	e := Parse(`{"level":"debug","msg":"x"}`)
	if e.Level != "DEBUG" {
		t.Fatalf("Level = %q, want DEBUG", e.Level)
	}
	if len(e.Attrs) != 0 {
		t.Fatalf("Attrs = %v, want none", e.Attrs)
	}
}
