// Package pkginfo parses SlackBuilds package descriptors into normalized
// Package records and caches them per process.
package pkginfo

import (
	"bufio"
	"os"
	"strings"

	"github.com/sbopak/sbopak/pkg/errors"
)

// ParseDescriptor parses a flat KEY="value" descriptor file. A value may be
// continued onto following lines with a trailing backslash; the continuation
// lines are joined into the value with a single space. Surrounding double
// quotes are stripped from values.
func ParseDescriptor(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open descriptor %s", path)
	}
	defer func() { _ = file.Close() }()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		startLine := lineNo
		for strings.HasSuffix(line, "\\") {
			line = strings.TrimSpace(strings.TrimSuffix(line, "\\"))
			if !scanner.Scan() {
				break
			}
			lineNo++
			next := strings.TrimSpace(scanner.Text())
			if next != "" {
				line += " " + next
			}
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			return nil, errors.Wrapf(errors.ErrDescriptorParse, "%s line %d: not a KEY=\"value\" line: %q", path, startLine, line)
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor %s", path)
	}
	return values, nil
}
