package tui

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeTempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, pngBytes, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}

func TestLoadImageAttachment(t *testing.T) {
	path := writeTempImage(t, "gazal.png")

	att, err := LoadImageAttachment(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if att.MIMEType != "image/png" {
		t.Fatalf("mime: got %q", att.MIMEType)
	}
	decoded, err := base64.StdEncoding.DecodeString(att.Data)
	if err != nil || string(decoded) != string(pngBytes) {
		t.Fatalf("payload did not round-trip: %v", err)
	}
	if !strings.HasPrefix(att.DataURI(), "data:image/png;base64,") {
		t.Fatalf("data URI: %q", att.DataURI())
	}
}

func TestLoadImageAttachmentRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("matn"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadImageAttachment(path); err == nil {
		t.Fatalf("non-image extension must be rejected")
	}
}

func TestLoadImageAttachmentRejectsMissingFile(t *testing.T) {
	if _, err := LoadImageAttachment(filepath.Join(t.TempDir(), "yoq.png")); err == nil {
		t.Fatalf("missing file must be rejected")
	}
}

func TestLoadImageAttachmentFileURI(t *testing.T) {
	path := writeTempImage(t, "she'r rasmi.jpg")
	uri := "file://" + strings.ReplaceAll(path, " ", "%20")

	att, err := LoadImageAttachment(uri)
	if err != nil {
		t.Fatalf("file URI load: %v", err)
	}
	if att.MIMEType != "image/jpeg" {
		t.Fatalf("mime: got %q", att.MIMEType)
	}
}

func TestNormalizeAttachmentPath(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "  /tmp/a.png  ", want: "/tmp/a.png", wantOK: true},
		{in: `"/tmp/b c.png"`, want: "/tmp/b c.png", wantOK: true},
		{in: "file:///tmp/d.png", want: "/tmp/d.png", wantOK: true},
		{in: "   ", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := normalizeAttachmentPath(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Fatalf("normalize(%q) = (%q,%v), want (%q,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
