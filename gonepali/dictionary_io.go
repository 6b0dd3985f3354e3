package gonepali

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadEntriesTSV reads "roman<TAB>devanagari[<TAB>classes]" lines.
// Blank lines and lines starting with # are skipped.
func ReadEntriesTSV(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("line %d: expected 2 or 3 columns, got %d: %w", lineNumber, len(parts), ErrInvalidEntry)
		}

		entry := Entry{Roman: parts[0], Devanagari: parts[1]}
		if len(parts) == 3 {
			class, err := ParseWordClass(parts[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			entry.Class = class
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// WriteEntriesTSV writes entries in the format ReadEntriesTSV reads
func WriteEntriesTSV(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, entry := range entries {
		var err error
		if entry.Class == ClassNone {
			_, err = fmt.Fprintf(bw, "%s\t%s\n", entry.Roman, entry.Devanagari)
		} else {
			_, err = fmt.Fprintf(bw, "%s\t%s\t%s\n", entry.Roman, entry.Devanagari, entry.Class)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

type yamlEntries struct {
	Entries []Entry `yaml:"entries"`
}

// ReadEntriesYAML reads a document of the form
//
//	entries:
//	  - roman: ghar
//	    devanagari: घर
//	    class: postposition
func ReadEntriesYAML(r io.Reader) ([]Entry, error) {
	var doc yamlEntries
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml entries: %w", err)
	}
	return doc.Entries, nil
}

// WriteEntriesYAML writes entries in the format ReadEntriesYAML reads
func WriteEntriesYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlEntries{entries}); err != nil {
		return err
	}
	return enc.Close()
}

// MarshalYAML writes a class as its comma separated names
func (c WordClass) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML accepts the comma separated names ParseWordClass does
func (c *WordClass) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	class, err := ParseWordClass(s)
	if err != nil {
		return err
	}
	*c = class
	return nil
}
