package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTextFilePlainASCII(t *testing.T) {
	if !IsTextFile("notes.txt", []byte("hello\nworld\n")) {
		t.Fatalf("expected ASCII content to be treated as text")
	}
}

func TestIsTextFileRejectsNulBytes(t *testing.T) {
	content := []byte{0x7F, 'E', 'L', 'F', 0x00, 0x01, 0x02}
	if IsTextFile("a.out", content) {
		t.Fatalf("expected content with NUL bytes to be treated as binary")
	}
}

func TestIsTextFileRejectsBinaryExtension(t *testing.T) {
	if IsTextFile("photo.png", []byte("not actually an image")) {
		t.Fatalf("expected .png to short-circuit as binary regardless of content")
	}
}

func TestIsTextFileDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if !IsTextFile("config.ini", content) {
		t.Fatalf("expected UTF-16 LE content to be treated as text")
	}
}

func TestNormalizeTextContentUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	got := NormalizeTextContent(content)
	want := "A\r\n"
	if got != want {
		t.Fatalf("NormalizeTextContent returned %q, want %q", got, want)
	}
}

func TestNormalizeTextContentStripsUTF8BOM(t *testing.T) {
	content := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	if got := NormalizeTextContent(content); got != "hi" {
		t.Fatalf("NormalizeTextContent returned %q, want %q", got, "hi")
	}
}

func TestReadFileHeadLimitsBytes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "big.txt")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}

	head, err := ReadFileHead(path, 4)
	if err != nil {
		t.Fatalf("ReadFileHead failed: %v", err)
	}
	if string(head) != "0123" {
		t.Fatalf("expected first 4 bytes, got %q", head)
	}
}
