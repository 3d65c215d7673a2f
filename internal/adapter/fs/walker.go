package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*.h"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Expand resolves command-line arguments to header paths. Existing files are
// taken literally and directories are walked. Other arguments with glob
// metacharacters are matched; a pattern that matches nothing, like any other
// missing path, is returned as given so that it fails when it is read.
func (w *Walker) Expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, statErr := os.Stat(arg)
		switch {
		case statErr == nil && info.IsDir():
			found, err := w.Walk(arg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, found...)
			continue
		case statErr == nil:
			paths = append(paths, arg)
			continue
		}

		if hasMeta(arg) {
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, err
			}
			if len(matches) > 0 {
				sort.Strings(matches)
				paths = append(paths, matches...)
				continue
			}
		}

		paths = append(paths, arg)
	}
	return paths, nil
}

// Walk returns the files under root matching the include patterns, in
// lexical order.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && w.shouldExclude(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
