package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("12345"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	c, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if c.Name != "clip.mp4" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.Size != 5 {
		t.Errorf("Size = %d, want 5", c.Size)
	}
}

func TestProbeErrors(t *testing.T) {
	if _, err := Probe(""); err == nil {
		t.Error("empty path accepted")
	}
	if _, err := Probe("   "); err == nil {
		t.Error("blank path accepted")
	}
	if _, err := Probe(filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := Probe(t.TempDir()); err == nil {
		t.Error("directory accepted as media")
	}
}

func TestUploadName(t *testing.T) {
	a := UploadName(Capture{Name: "clip.mp4"})
	b := UploadName(Capture{Name: "clip.mp4"})
	if a == b {
		t.Error("two uploads of the same file produced the same name")
	}
	if !strings.HasSuffix(a, ".mp4") {
		t.Errorf("UploadName = %q, want .mp4 suffix", a)
	}
	if strings.Contains(a, "clip") {
		t.Errorf("UploadName = %q leaks the local name", a)
	}

	// No extension falls back to .mp4.
	if got := UploadName(Capture{Name: "capture"}); !strings.HasSuffix(got, ".mp4") {
		t.Errorf("extensionless UploadName = %q", got)
	}
	if got := UploadName(Capture{Name: "frame.jpg"}); !strings.HasSuffix(got, ".jpg") {
		t.Errorf("jpg UploadName = %q", got)
	}
}

func TestEncodeBase64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.jpg")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := EncodeBase64(path)
	if err != nil {
		t.Fatalf("EncodeBase64 failed: %v", err)
	}
	if got != "YWJj" {
		t.Errorf("EncodeBase64 = %q, want YWJj", got)
	}
	if _, err := EncodeBase64(filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Error("missing file accepted")
	}
}
