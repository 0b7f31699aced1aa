package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/eykd/loclint/internal/reconcile"
)

// scanFolderImpl walks root recursively and returns every regular
// file's path relative to root, using filepath.ToSlash so the result is
// consistent across platforms.
func scanFolderImpl(root string) (reconcile.FolderInventory, error) {
	var relPaths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPaths = append(relPaths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return reconcile.FolderInventory{}, fmt.Errorf("scanning folder %s: %w", root, err)
	}
	return reconcile.FolderInventory{Root: root, RelPaths: relPaths}, nil
}

func scanFolders(roots []string) ([]reconcile.FolderInventory, error) {
	inventories := make([]reconcile.FolderInventory, 0, len(roots))
	for _, r := range roots {
		inv, err := scanFolderImpl(r)
		if err != nil {
			return nil, err
		}
		inventories = append(inventories, inv)
	}
	return inventories, nil
}
