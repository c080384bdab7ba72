// Package steampath locates per-application install directories inside
// Steam library folders by reading the platform's manifest files.
package steampath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
)

// ErrNotFound indicates no library root carries a usable app manifest, or
// the resolved install directory does not exist on disk.
var ErrNotFound = errors.New("steam install path not found")

var (
	installDirPattern  = regexp.MustCompile(`installdir"\s+"(.+?)"`)
	libraryPathPattern = regexp.MustCompile(`"path"\s+"(.+?)"`)
)

// AppInstallDir locates the install directory for appID. Each root is a
// steamapps directory; the first root carrying appmanifest_<appID>.acf whose
// resolved common/<installdir> exists on disk wins.
func AppInstallDir(appID uint32, roots ...string) (string, error) {
	for _, root := range roots {
		manifest := filepath.Join(root, fmt.Sprintf("appmanifest_%d.acf", appID))
		content, err := os.ReadFile(manifest)
		if err != nil {
			continue
		}

		m := installDirPattern.FindStringSubmatch(string(content))
		if m == nil {
			continue
		}

		dir := filepath.Join(root, "common", m[1])
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		return dir, nil
	}
	return "", fmt.Errorf("%w: app %d", ErrNotFound, appID)
}

// LibraryRoots parses libraryfolders.vdf inside a steamapps directory and
// returns the steamapps directories of every additional library it
// declares. Missing or unreadable libraries are skipped.
func LibraryRoots(steamappsDir string) []string {
	content, err := os.ReadFile(filepath.Join(steamappsDir, "libraryfolders.vdf"))
	if err != nil {
		return nil
	}

	var roots []string
	for _, m := range libraryPathPattern.FindAllStringSubmatch(string(content), -1) {
		root := filepath.Join(m[1], "steamapps")
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			roots = append(roots, root)
		}
	}
	return roots
}

// DefaultRoots returns the steamapps directories of the Steam installs
// conventional for the current platform, expanded with the additional
// library folders they declare.
func DefaultRoots() []string {
	var bases []string
	home, err := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		bases = append(bases, `C:\Program Files (x86)\Steam`)
	case "darwin":
		if err == nil {
			bases = append(bases, filepath.Join(home, "Library", "Application Support", "Steam"))
		}
	default:
		if err == nil {
			bases = append(bases,
				filepath.Join(home, ".steam", "steam"),
				filepath.Join(home, ".local", "share", "Steam"),
			)
		}
	}

	seen := make(map[string]bool)
	var roots []string
	add := func(root string) {
		if seen[root] {
			return
		}
		seen[root] = true
		roots = append(roots, root)
	}

	for _, base := range bases {
		root := filepath.Join(base, "steamapps")
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		add(root)
		for _, extra := range LibraryRoots(root) {
			add(extra)
		}
	}
	return roots
}
