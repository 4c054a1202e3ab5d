// Package csvparser reads the EUC-KR encoded statistics files and turns them into rows.
package csvparser

import (
	"fmt"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Decode converts EUC-KR bytes to a UTF-8 string. Byte sequences that are
// not valid EUC-KR are replaced with U+FFFD.
func Decode(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode EUC-KR content: %w", err)
	}
	return string(decoded), nil
}
