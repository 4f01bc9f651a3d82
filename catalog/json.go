package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// catalogFilePermissions is the file permission mode for exported catalogs.
const catalogFilePermissions = 0o644

// ParseJSON parses a catalog from a JSON object of the form
//
//	{"transform-arrow-functions": {"chrome": "47", "node": 6}, ...}
//
// Entry order follows the order of keys in the document. Versions may be
// strings or numbers.
func ParseJSON(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse catalog JSON: unexpected token %v", tok)
		}

		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: entry %q: %w", name, err)
		}
		support, err := supportFromRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Support: support})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("failed to parse catalog JSON: trailing data after catalog object")
	}

	return New(entries...)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// supportFromRaw converts decoded JSON or TOML values into a SupportTable.
func supportFromRaw(raw map[string]any) (SupportTable, error) {
	support := make(SupportTable, len(raw))
	for env, value := range raw {
		s, err := versionString(value)
		if err != nil {
			return nil, fmt.Errorf("environment %q: %w", env, err)
		}
		support[env] = s
	}
	return support, nil
}

func versionString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int64:
		return fmt.Sprint(v), nil
	case float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported version value %v (%T)", value, value)
	}
}

// MarshalJSON serializes the catalog with entries in catalog order and
// environments sorted, so the output is reproducible.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	if c.Len() == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, support := range c.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		keyJSON, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		// encoding/json sorts map keys.
		valJSON, err := json.Marshal(support)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteTo writes the catalog as indented JSON to w.
func (c *Catalog) WriteTo(w io.Writer) (int64, error) {
	data, err := c.MarshalJSON()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return 0, err
	}
	buf.WriteByte('\n')
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// WriteFile writes the catalog as indented JSON to path.
func (c *Catalog) WriteFile(path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), catalogFilePermissions)
}
