// Package fsutil provides file system utility functions and the OS-backed
// implementation of the compiler's filesystem collaborator.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OS is the real-filesystem collaborator handed to the compiler.
type OS struct{}

// Exists reports whether path names an existing file or directory.
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the named file.
func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
