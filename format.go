package presetenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/liangklfang/babel-preset-env/targets"
)

// ToJSON serializes the result as indented JSON followed by a newline.
func (r *Result) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseResult parses a result previously written with ToJSON.
func ParseResult(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse result JSON: %w", err)
	}
	if r.Targets == nil {
		r.Targets = targets.Map{}
	}
	return &r, nil
}

// ReadResultFile reads and parses a result JSON file.
func ReadResultFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}
	return ParseResult(data)
}

// WriteText writes a human-readable summary of the result to w.
func (r *Result) WriteText(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	t := r.Targets.String()
	if t == "" {
		t = "(none: every transformation applies)"
	}
	fmt.Fprintf(&buf, "targets: %s\n", t)

	fmt.Fprintf(&buf, "plugins (%d):\n", len(r.Plugins))
	for _, p := range r.Plugins {
		fmt.Fprintf(&buf, "  %s [%s]", p.Name, p.Kind)
		if p.Options.Loose {
			buf.WriteString(" loose")
		}
		if p.Kind == KindBuiltIns {
			fmt.Fprintf(&buf, " polyfills=%d regenerator=%t", len(p.Options.Polyfills), p.Options.Regenerator)
		}
		buf.WriteByte('\n')
	}

	if len(r.Polyfills) > 0 {
		fmt.Fprintf(&buf, "polyfills (%d):\n", len(r.Polyfills))
		for _, name := range r.Polyfills {
			fmt.Fprintf(&buf, "  %s\n", name)
		}
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(&buf, "warning: %s\n", warning)
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
