package viewer

import (
	"os"
	"path/filepath"
)

// ShaderDir picks the base directory the shader paths are relative to.
// A configured directory always wins. Otherwise the executable's directory,
// then the working directory, is used when it holds probe. ok is false when
// neither does.
func ShaderDir(configured, probe string) (dir string, ok bool) {
	if configured != "" {
		return configured, true
	}
	candidates := []string{"."}
	if exe, err := os.Executable(); err == nil {
		candidates = []string{filepath.Dir(exe), "."}
	}
	for _, dir := range candidates {
		if fileExists(filepath.Join(dir, filepath.FromSlash(probe))) {
			return dir, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
