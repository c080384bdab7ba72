// Package launch starts game processes from located install directories.
package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrExecutableNotFound indicates the expected game binary is missing from
// the install directory.
var ErrExecutableNotFound = errors.New("game executable not found")

// Game starts exe inside installDir with the given arguments and does not
// wait for it to exit.
func Game(installDir, exe string, args ...string) error {
	path := filepath.Join(installDir, exe)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
	}

	cmd := exec.Command(path, args...)
	cmd.Dir = installDir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}
	return cmd.Process.Release()
}
