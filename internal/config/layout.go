// internal/config/layout.go
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultLayout is the built-in map used when no layout file is given.
var DefaultLayout = []string{
	"####################",
	"S=====..............",
	"#....=..............",
	"#....=....=======...",
	"#....=....=.....=...",
	"#....======.....=...",
	"#...............=...",
	"#.....~~........=...",
	"#.....~~....=====...",
	"#...........=.......",
	"#...........=======G",
	"####################",
}

// LoadLayout reads a map layout file. Blank lines and lines starting with
// ';' are ignored.
func LoadLayout(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout file %s is empty", path)
	}
	return rows, nil
}
