package csvparser

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/greendata20/disablility-monitoring/csvparser/entities"
	"github.com/greendata20/disablility-monitoring/interfaces"
	"github.com/greendata20/disablility-monitoring/logging"
)

// Compile-time check to ensure Parser implements FileParser interface
var _ interfaces.FileParser = (*Parser)(nil)

// SampleMaxLines is the per-file line cap used for sample data.
const SampleMaxLines = 999

// Parser turns one statistics file into rows.
type Parser struct {
	// MaxLines caps the number of lines read after the header.
	// Empty lines count against the cap. Zero or less means no cap.
	MaxLines int
}

// NewParser creates a Parser with the given line cap.
func NewParser(maxLines int) *Parser {
	return &Parser{MaxLines: maxLines}
}

// ParseFile reads, decodes and parses the file at path.
func (p *Parser) ParseFile(path string) ([]entities.Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	rows := p.ParseText(text)
	logging.Debug("File parsed", "file", path, "bytes", len(raw), "records", len(rows))
	return rows, nil
}

// ParseText parses decoded file content. The first line is the header,
// fields are separated by plain commas and no quoting is recognised.
func (p *Parser) ParseText(text string) []entities.Row {
	lines := strings.Split(text, "\n")

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = trim(headers[i])
	}

	end := len(lines)
	if p.MaxLines > 0 && end > p.MaxLines+1 {
		end = p.MaxLines + 1
	}

	rows := make([]entities.Row, 0, end-1)
	for _, line := range lines[1:end] {
		line = trim(line)
		if line == "" {
			continue
		}

		values := strings.Split(line, ",")
		row := entities.Row{Fields: make([]entities.Field, 0, len(headers))}
		for i, header := range headers {
			value := ""
			if i < len(values) {
				value = trim(values[i])
			}
			row.Set(header, coerce(header, value))
		}
		rows = append(rows, row)
	}

	return rows
}

// coerce converts the integer columns and keeps every other column as text.
func coerce(header, value string) any {
	if header == entities.ColumnRegisteredCount || header == entities.ColumnAge {
		return ParseLeadingInt(value)
	}
	return value
}

// ParseLeadingInt parses an optional sign followed by decimal digits at the
// start of s and ignores whatever follows. It returns 0 when s does not
// start with a number or the number does not fit in an int.
func ParseLeadingInt(s string) int {
	s = trim(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n > math.MaxInt || n < math.MinInt {
		return 0
	}
	return int(n)
}

// trim strips surrounding white space, including a byte order mark.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
