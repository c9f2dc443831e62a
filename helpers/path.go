package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// OpenFileForWriting creates filename, or truncates it if it exists, with
// any missing parent directories created first.
func OpenFileForWriting(fs afero.Fs, filename string) (afero.File, error) {
	filename = filepath.Clean(filename)
	if dir := filepath.Dir(filename); dir != "." {
		if err := fs.MkdirAll(dir, 0o777); err != nil {
			return nil, fmt.Errorf("create %q: %w", dir, err)
		}
	}
	return fs.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o666)
}
