// Package intake validates and stores uploaded CAD files.
package intake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

var supportedFormats = map[string]bool{
	"stp":  true,
	"step": true,
}

// FormatOf returns the lower cased extension of filename (the text after the last '.').
// Only STEP files are accepted. Anything else returns ErrUnsupportedFormat.
func FormatOf(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !supportedFormats[ext] {
		return "", errors.Wrapf(ErrUnsupportedFormat, "'%s'", filename)
	}

	return ext, nil
}

// UploadDir writes uploads into a single directory. Each upload is stored under a new
// name prefixed with a millisecond timestamp. Stamps handed out by one UploadDir strictly
// increase, so two uploads never get the same name even within the same millisecond.
type UploadDir struct {
	root string

	mu        sync.Mutex
	lastStamp int64
	now       func() time.Time
}

func NewUploadDir(root string) *UploadDir {
	return &UploadDir{root: root, now: time.Now}
}

func (d *UploadDir) Root() string {
	return d.root
}

// Save writes r into the upload directory, creating the directory if needed. It returns
// the path written and the number of bytes stored.
func (d *UploadDir) Save(originalName string, r io.Reader) (string, int64, error) {
	if err := os.MkdirAll(d.root, 0755); err != nil {
		return "", 0, err
	}

	path := filepath.Join(d.root, d.storedName(originalName))

	// O_EXCL so an existing file, say from a previous run with a skewed clock, is never
	// overwritten.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", 0, err
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(path)
		return "", 0, err
	}

	return path, written, nil
}

// Exists returns true if path is a regular file.
func Exists(path string) bool {
	finfo, err := os.Stat(path)
	return err == nil && finfo.Mode().IsRegular()
}

func (d *UploadDir) storedName(originalName string) string {
	base := filepath.Base(originalName)
	ext := strings.ToLower(filepath.Ext(base))
	name := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = "cad"
	}

	return fmt.Sprintf("%d_%s%s", d.nextStamp(), name, ext)
}

func (d *UploadDir) nextStamp() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	stamp := d.now().UnixMilli()
	if stamp <= d.lastStamp {
		stamp = d.lastStamp + 1
	}
	d.lastStamp = stamp

	return stamp
}
