// Package media handles the local capture file that stands in for the
// device camera: the recorder screen attaches a file from disk, the
// enrollment upload streams it, and the aruco scanner base64-encodes it.
// Video encoding itself is out of scope; whatever produced the file owns
// that.
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Capture describes a probed media file ready to attach to a submission.
type Capture struct {
	Path string
	Name string
	Size int64
}

// Probe validates that path names a readable regular file and returns its
// capture descriptor. This runs before any network call so a missing file
// fails the form, not the upload.
func Probe(path string) (Capture, error) {
	if strings.TrimSpace(path) == "" {
		return Capture{}, fmt.Errorf("no media attached")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Capture{}, fmt.Errorf("media file %s does not exist", path)
		}
		return Capture{}, err
	}
	if info.IsDir() {
		return Capture{}, fmt.Errorf("%s is a directory, not a media file", path)
	}
	return Capture{Path: path, Name: info.Name(), Size: info.Size()}, nil
}

// UploadName derives the multipart filename for a capture: a fresh uuid
// with the original extension, so concurrent submissions never collide on
// the server's upload directory.
func UploadName(c Capture) string {
	ext := filepath.Ext(c.Name)
	if ext == "" {
		ext = ".mp4"
	}
	return uuid.NewString() + ext
}

// EncodeBase64 reads the file at path and returns its base64 form, the
// payload shape the marker-detection endpoint expects.
func EncodeBase64(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
