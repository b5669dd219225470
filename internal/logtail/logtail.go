package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed JSON log record.
type Entry struct {
	Time  string
	Level string
	Msg   string
	Attrs []string // "key=value", sorted by key
}

// String renders the entry on a single line.
func (e Entry) String() string {
	parts := make([]string, 0, 3+len(e.Attrs))
	for _, p := range []string{e.Time, e.Level, e.Msg} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, e.Attrs...)
	return strings.Join(parts, " ")
}

// Parse decodes a JSON log line. Lines that are not JSON objects come back
// as the message of an otherwise empty entry.
func Parse(line string) Entry {
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return Entry{Msg: line}
	}

	entry := Entry{
		Time:  shortTime(stringField(rec, "time")),
		Level: strings.ToUpper(stringField(rec, "level")),
		Msg:   stringField(rec, "msg"),
	}
	delete(rec, "time")
	delete(rec, "level")
	delete(rec, "msg")

	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		entry.Attrs = append(entry.Attrs, k+"="+formatValue(rec[k]))
	}
	return entry
}

// Format is shorthand for Parse(line).String().
func Format(line string) string {
	return Parse(line).String()
}

func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

func shortTime(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case nil:
		return "null"
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
