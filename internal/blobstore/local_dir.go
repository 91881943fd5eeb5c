package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const putCollisionRetries = 5

// LocalDir stores blobs as plain files in one flat directory. Stored
// names carry a millisecond timestamp prefix, so repeated uploads of the
// same filename land under distinct names.
type LocalDir struct {
	root string
	now  func() time.Time
}

var _ BlobStore = (*LocalDir)(nil)

// NewLocalDir creates the uploads directory if needed and returns a
// store rooted there.
func NewLocalDir(root string) (*LocalDir, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("uploads root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &LocalDir{root: abs, now: time.Now}, nil
}

// Root returns the absolute uploads directory.
func (d *LocalDir) Root() string {
	if d == nil {
		return ""
	}
	return d.root
}

// Put writes blob bytes under a timestamp-prefixed name derived from
// filename and returns the stored name. The file is created with O_EXCL;
// a name collision retries with a bumped timestamp instead of
// overwriting.
func (d *LocalDir) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	if d == nil {
		return "", fmt.Errorf("blob store is not configured")
	}
	if r == nil {
		return "", fmt.Errorf("reader is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	base := sanitizeFilename(filename)
	stamp := d.now().UnixMilli()
	for attempt := 0; ; attempt++ {
		name := fmt.Sprintf("%d-%s", stamp+int64(attempt), base)
		f, err := os.OpenFile(filepath.Join(d.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			if attempt < putCollisionRetries {
				continue
			}
			return "", fmt.Errorf("blob name collision for %q", base)
		}
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(f, r); err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return "", err
		}
		if err := f.Close(); err != nil {
			_ = os.Remove(f.Name())
			return "", err
		}
		return name, nil
	}
}

// Open returns a reader over one stored blob.
func (d *LocalDir) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	if d == nil {
		return nil, fmt.Errorf("blob store is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := d.pathFromName(storedName)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes one stored blob. A missing file reports ErrNotFound;
// any other filesystem error passes through unchanged.
func (d *LocalDir) Delete(ctx context.Context, storedName string) error {
	if d == nil {
		return fmt.Errorf("blob store is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := d.pathFromName(storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (d *LocalDir) pathFromName(storedName string) (string, error) {
	name := strings.TrimSpace(storedName)
	if name == "" {
		return "", fmt.Errorf("stored name is required")
	}
	// The namespace is flat: stored names must not address outside it.
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid stored name")
	}
	return filepath.Join(d.root, name), nil
}

func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || strings.Trim(base, ".") == "" {
		base = "blob"
	}
	return base
}
