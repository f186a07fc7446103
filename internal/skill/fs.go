package skill

import "os"

// FS is the minimal filesystem surface the parser and validator depend on.
// The package-level default reads the real filesystem; tests substitute an
// in-memory fake to exercise I/O failure paths.
type FS interface {
	Exists(path string) bool
	IsDir(path string) bool
	ReadFile(path string) ([]byte, error)
}

// defaultFS backs the exported convenience functions.
var defaultFS FS = osFS{}

// osFS implements FS over the real filesystem.
type osFS struct{}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
