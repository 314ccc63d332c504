package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Byte-order marks recognized during text detection and decoding.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

const (
	// sniffLen caps how many bytes the heuristics inspect.
	sniffLen = 4096
	// maxControlRatio is the fraction of non-text bytes above which the
	// content is treated as binary.
	maxControlRatio = 0.30
)

// binaryExtensions short-circuits sniffing for formats that are always
// binary, so an unlucky text-looking header cannot misclassify them.
var binaryExtensions = map[string]bool{}

func init() {
	for _, ext := range strings.Fields(`
		.7z .avi .bin .bmp .bz2 .class .dll .dylib .exe .flac .gif .gz
		.ico .iso .jar .jpeg .jpg .mkv .mov .mp3 .mp4 .ogg .otf .pdf
		.png .so .tar .tgz .ttf .wav .wasm .woff .woff2 .xz .zip`) {
		binaryExtensions[ext] = true
	}
}

// IsTextFile reports whether content looks like displayable text. The path,
// when non-empty, vetoes known binary extensions before any sniffing.
func IsTextFile(path string, content []byte) bool {
	if path != "" && binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}

	// A Unicode BOM marks the file as text even though UTF-16 payloads are
	// full of NUL bytes.
	if hasBOM(sample) {
		return true
	}
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	control := 0
	for _, b := range sample {
		if !plausibleTextByte(b) {
			control++
		}
	}
	if control == len(sample) {
		return false
	}
	return float64(control)/float64(len(sample)) < maxControlRatio
}

func hasBOM(sample []byte) bool {
	return bytes.HasPrefix(sample, bomUTF8) ||
		bytes.HasPrefix(sample, bomUTF16LE) ||
		bytes.HasPrefix(sample, bomUTF16BE)
}

func plausibleTextByte(b byte) bool {
	switch b {
	case '\t', '\n', '\r', 0x1B:
		return true
	}
	return (b >= 0x20 && b <= 0x7E) || b >= 0x80
}

// ReadFileHead returns up to limit bytes from the beginning of path.
func ReadFileHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(io.LimitReader(f, limit))
}

// NormalizeTextContent converts BOM-marked UTF-8/UTF-16 content to a UTF-8
// string, stripping the mark. Everything else passes through unchanged.
func NormalizeTextContent(content []byte) string {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return string(content[len(bomUTF8):])
	case bytes.HasPrefix(content, bomUTF16LE):
		return decodeUTF16(content, unicode.LittleEndian)
	case bytes.HasPrefix(content, bomUTF16BE):
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
