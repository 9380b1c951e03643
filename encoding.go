// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"errors"
	"strings"

	"github.com/creachadair/toon/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a quoted TOON string value. The contents are escaped
// with JSON string escaping and double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a quoted TOON string value. Double quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
