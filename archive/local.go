package archive

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// localBackend writes products into a directory tree under a root path.
type localBackend struct {
	root string
}

func newLocalBackend(root string) *localBackend {
	return &localBackend{root: root}
}

func (b *localBackend) Put(localPath, relativeDir, name string) error {
	targetDir := filepath.Join(b.root, filepath.FromSlash(relativeDir))
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return errors.Wrapf(err, "Could not create archive directory %v", targetDir)
	}

	source, err := os.Open(localPath)
	if err != nil {
		return errors.Wrapf(err, "Could not open %v for archiving", localPath)
	}
	defer source.Close()

	targetPath := filepath.Join(targetDir, name)
	target, err := os.Create(targetPath)
	if err != nil {
		return errors.Wrapf(err, "Could not create archive file %v", targetPath)
	}
	defer target.Close()

	if _, err = io.Copy(target, source); err != nil {
		return errors.Wrapf(err, "Could not write archive file %v", targetPath)
	}
	if err = target.Sync(); err != nil {
		return errors.Wrapf(err, "Could not flush archive file %v", targetPath)
	}
	return nil
}
