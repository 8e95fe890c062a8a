package pbxproj

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jazzharmony/pbxkit/internal/defs"
)

// Sentinel errors for descriptor resolution.
var (
	// ErrDescriptorNotFound indicates a glob matched no descriptor.
	ErrDescriptorNotFound = errors.New("pbxproj: no descriptor matches pattern")

	// ErrAmbiguousDescriptor indicates a glob matched more than one descriptor.
	ErrAmbiguousDescriptor = errors.New("pbxproj: pattern matches more than one descriptor")
)

// ResolveDescriptor turns a --project value into a single file path.
// An existing path is used as is, even when it contains glob
// metacharacters, and an .xcodeproj directory resolves to the descriptor
// inside it. Other values without metacharacters are returned cleaned, so
// a missing file surfaces later as a read error. A glob must match
// exactly one file.
func ResolveDescriptor(pattern string) (string, error) {
	if info, err := os.Stat(pattern); err == nil {
		if info.IsDir() {
			return filepath.Join(filepath.Clean(pattern), defs.DescriptorName), nil
		}
		return filepath.Clean(pattern), nil
	}
	if !hasMeta(pattern) {
		return filepath.Clean(pattern), nil
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", pattern, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrDescriptorNotFound, pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrAmbiguousDescriptor, pattern, strings.Join(matches, ", "))
	}
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// ReadDescriptor loads the whole descriptor into memory.
func ReadDescriptor(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read descriptor: %w", err)
	}
	return string(data), nil
}

// WriteDescriptor replaces the descriptor with text. The write goes through
// a temp file in the same directory and a rename, and keeps the original
// file mode when the file already exists. A symlinked descriptor is
// written through the link. No backup is kept.
func WriteDescriptor(path, text string) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pbxkit-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}
	return nil
}
