package term

import (
	"os"
	"path/filepath"
)

// companionScript resolves a helper script shipped alongside the binary.
// Looked up next to the executable first, then in its scripts/ directory.
// Falls back to the relative scripts/ path so invocations from a source
// checkout still find it.
func companionScript(name string) string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, candidate := range []string{
			filepath.Join(dir, name),
			filepath.Join(dir, "scripts", name),
		} {
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return filepath.Join("scripts", name)
}
