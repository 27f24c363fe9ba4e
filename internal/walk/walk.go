package walk

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

// Files returns every file under root, top-down: the files of a directory come
// before the files of its subdirectories. A missing root, or a root that is not
// a directory, yields no paths and no error.
func Files(fs afero.Fs, root string) ([]string, error) {
	info, err := fs.Stat(root)
	if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{}, nil
	}

	files := []string{}
	if err := walkDir(fs, root, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func walkDir(fs afero.Fs, dir string, files *[]string) error {
	// ReadDir sorts by name; on OsFs the infos come from lstat
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return err
	}

	var subdirs []string
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		if info.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 && linksToDir(fs, path) {
			// listed nowhere and not followed
			continue
		}
		*files = append(*files, path)
	}

	for _, sub := range subdirs {
		if err := walkDir(fs, sub, files); err != nil {
			return err
		}
	}
	return nil
}

// linksToDir follows a symlink. A dangling link counts as a file.
func linksToDir(fs afero.Fs, path string) bool {
	target, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return target.IsDir()
}
