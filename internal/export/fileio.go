package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"setlist/internal/rv"
)

// lockName is the advisory lock taken for library writes. The host
// application and concurrent runs of this tool coordinate through it.
const lockName = ".setlist.lock"

// WritePresentationFile encodes p and writes it to path. Writes within
// the same directory are serialized with an advisory file lock, and the
// document lands via rename so a reader never sees a partial file.
func WritePresentationFile(path string, p *rv.Presentation) error {
	dir := filepath.Dir(path)
	lock := flock.New(filepath.Join(dir, lockName))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("export: lock library %s: %w", dir, err)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, ".pro-*")
	if err != nil {
		return fmt.Errorf("export: stage %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(rv.Marshal(p)); err != nil {
		tmp.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("export: replace %s: %w", path, err)
	}
	return nil
}

// ReadPresentationFile reads and decodes the document at path. A
// missing file surfaces as an error satisfying errors.Is(err,
// os.ErrNotExist); anything else is a decode failure.
func ReadPresentationFile(path string) (*rv.Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("export: read %s: %w", path, err)
	}
	p, err := rv.UnmarshalPresentation(data)
	if err != nil {
		return nil, fmt.Errorf("export: decode %s: %w", path, err)
	}
	return p, nil
}
