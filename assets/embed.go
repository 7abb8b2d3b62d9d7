// Package assets embeds the locale catalogs shipped with the binary.
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed locales/*.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Locales returns the names of the embedded catalogs, e.g. "en-US".
func Locales() ([]string, error) {
	paths, err := fs.Glob(FS, "locales/*.txt")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, strings.TrimSuffix(path.Base(p), ".txt"))
	}
	sort.Strings(out)
	return out, nil
}

// Catalog parses one locale file of "key = value" lines.
func Catalog(locale string) (map[string]string, error) {
	lines, err := readLines("locales/" + locale + ".txt")
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("catalog %s: malformed line %q", locale, line)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate key %q", locale, key)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
