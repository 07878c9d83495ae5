package shader

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/logger"
)

// Compiler turns GLSL sources into a linked program handle.
type Compiler interface {
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(program uint32)
}

// Reporter shows a failure to the user.
type Reporter interface {
	Report(title, message string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(title, message string)

// Report calls f.
func (f ReporterFunc) Report(title, message string) { f(title, message) }

// Cache owns every program it links. Programs are keyed by
// "vertexPath|fragmentPath" and live until Close.
type Cache struct {
	fsys     fs.FS
	compiler Compiler
	reporter Reporter
	programs map[string]uint32
}

// NewCache creates a cache reading sources from fsys. reporter may be nil.
func NewCache(fsys fs.FS, compiler Compiler, reporter Reporter) *Cache {
	return &Cache{
		fsys:     fsys,
		compiler: compiler,
		reporter: reporter,
		programs: make(map[string]uint32),
	}
}

func cacheKey(vertexPath, fragmentPath string) string {
	return vertexPath + "|" + fragmentPath
}

// Program returns the linked program for the pair, building it on first
// use. Failures are logged and reported, and yield 0. Failed pairs are not
// cached, so a later call retries.
func (c *Cache) Program(vertexPath, fragmentPath string) uint32 {
	key := cacheKey(vertexPath, fragmentPath)
	if p, ok := c.programs[key]; ok {
		return p
	}

	p, err := c.build(vertexPath, fragmentPath)
	if err != nil {
		logger.Error("shader program failed",
			zap.String("vertex", vertexPath),
			zap.String("fragment", fragmentPath),
			zap.Error(err))
		if c.reporter != nil {
			c.reporter.Report(title(err), err.Error())
		}
		return 0
	}

	logger.Info("shader program linked",
		zap.String("key", key),
		zap.Uint32("program", p))
	c.programs[key] = p
	return p
}

func (c *Cache) build(vertexPath, fragmentPath string) (uint32, error) {
	vertexSrc, err := c.read(vertexPath)
	if err != nil {
		return 0, err
	}
	fragmentSrc, err := c.read(fragmentPath)
	if err != nil {
		return 0, err
	}
	return c.compiler.CompileProgram(vertexSrc, fragmentSrc)
}

func (c *Cache) read(path string) (string, error) {
	data, err := fs.ReadFile(c.fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to open shader file %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrEmptySource)
	}
	return string(data), nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	return len(c.programs)
}

// Close deletes every cached program.
func (c *Cache) Close() {
	for key, p := range c.programs {
		c.compiler.DeleteProgram(p)
		delete(c.programs, key)
	}
}
