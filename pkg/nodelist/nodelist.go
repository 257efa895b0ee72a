// Package nodelist reads plain-text node id lists: one base-10 integer id
// per line, blank lines and lines starting with '#' ignored.
package nodelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads every node id from r, in the order they appear.
func Load(r io.Reader) ([]int64, error) {
	var ids []int64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("nodelist: line %d: %w", lineNo, err)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("nodelist: %w", err)
	}
	return ids, nil
}
