// Package textenc decodes legacy East Asian text encodings into UTF-8.
package textenc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedEncoding is returned for an encoding name Decode does not know.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Canonical encoding names.
const (
	GBK       = "gbk"
	GB18030   = "gb18030"
	HZGB2312  = "hz-gb2312"
	Big5      = "big5"
	ShiftJIS  = "shift_jis"
	EUCJP     = "euc-jp"
	ISO2022JP = "iso-2022-jp"
	EUCKR     = "euc-kr"
	UTF8      = "utf-8"
)

//nolint:gochecknoglobals // Read-only lookup table.
var encodings = map[string]encoding.Encoding{
	GBK:       simplifiedchinese.GBK,
	GB18030:   simplifiedchinese.GB18030,
	HZGB2312:  simplifiedchinese.HZGB2312,
	Big5:      traditionalchinese.Big5,
	ShiftJIS:  japanese.ShiftJIS,
	EUCJP:     japanese.EUCJP,
	ISO2022JP: japanese.ISO2022JP,
	EUCKR:     korean.EUCKR,
	UTF8:      unicode.UTF8BOM,
}

//nolint:gochecknoglobals // Read-only lookup table.
var aliases = map[string]string{
	"cp936":  GBK,
	"gb2312": GBK,
	"sjis":   ShiftJIS,
	"cp932":  ShiftJIS,
	"cp949":  EUCKR,
	"utf8":   UTF8,
}

// Canonical returns the canonical name for an encoding name or alias.
// Matching ignores case, surrounding space, and the "_"/"-" distinction.
func Canonical(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := encodings[key]; ok {
		return key, true
	}
	if canon, ok := aliases[key]; ok {
		return canon, true
	}

	for _, variant := range []string{
		strings.ReplaceAll(key, "_", "-"),
		strings.ReplaceAll(key, "-", "_"),
	} {
		if _, ok := encodings[variant]; ok {
			return variant, true
		}
		if canon, ok := aliases[variant]; ok {
			return canon, true
		}
	}

	return "", false
}

// IsSupported reports whether Decode accepts name.
func IsSupported(name string) bool {
	_, ok := Canonical(name)
	return ok
}

// Supported returns the sorted canonical encoding names.
func Supported() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode converts data from the named encoding to a UTF-8 string.
// Invalid byte sequences are replaced with U+FFFD rather than reported.
func Decode(data []byte, name string) (string, error) {
	canon, ok := Canonical(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}

	out, err := encodings[canon].NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", canon, err)
	}
	return string(out), nil
}
