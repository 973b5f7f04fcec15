package config

import (
	"fmt"
	"io"
	"os"
)

// BackupSuffix is appended to a config file's name when it is backed up
const BackupSuffix = ".bak"

// Backup copies the file at path next to itself with BackupSuffix and returns
// the backup path. An existing backup is replaced.
func Backup(path string) (string, error) {
	dst := path + BackupSuffix
	if err := copyFile(path, dst); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return dst, nil
}

// copyFile copies bytes rather than hard linking, since the source is
// rewritten in place afterwards.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
