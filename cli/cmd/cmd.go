package cmd

import (
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer kong was configured with, or os.Stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stderr returns the error writer kong was configured with, or os.Stderr.
func stderr(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stderr != nil {
		return ktx.Stderr
	}

	return os.Stderr
}

// Source is one named input stream.
type Source struct {
	Name string
	io.Reader
}

// SourceFiles is the ordered set of input streams named on the command line.
// Close releases the files it opened; standard input is left open.
type SourceFiles interface {
	IsZero() bool
	All() iter.Seq[Source]
	Close() error
}

type (
	sourceFilesKey struct{}
	sourceFiles    []Source
)

// IsZero reports whether there are no sources.
func (s sourceFiles) IsZero() bool { return len(s) == 0 }

// All yields every source in command-line order with stdin, if requested,
// last.
func (s sourceFiles) All() iter.Seq[Source] {
	return func(yield func(Source) bool) {
		for _, src := range s {
			if !yield(src) {
				return
			}
		}
	}
}

// Close closes every opened file other than standard input.
func (s sourceFiles) Close() error {
	var errs []error

	for _, src := range s {
		if src.Name == stdinSource {
			continue
		}

		if c, ok := src.Reader.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}

	return errors.Join(errs...)
}

// stdinSource names standard input on the command line.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context carrying the readable,
// distinct files among sources.
//
// Paths that resolve to the same file (through symlinks or relative paths)
// are opened once. Every "-" collapses into a single stdin source placed
// after all regular files. Files that cannot be opened are skipped.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourceFilesKey{}, openSources(os.Stdin, sources))
}

func openSources(stdin *os.File, sources []string) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var (
		files    sourceFiles
		seen     = make(map[fileID]struct{}, len(sources))
		useStdin bool
	)

	stdinID, haveStdinID := statID(stdin)

	for _, path := range sources {
		if path == stdinSource {
			useStdin = true

			continue
		}

		file, id, ok := openFile(path)
		if !ok {
			continue
		}

		if haveStdinID && id == stdinID {
			useStdin = true

			_ = file.Close()

			continue
		}

		if _, dup := seen[id]; dup {
			_ = file.Close()

			continue
		}

		seen[id] = struct{}{}
		files = append(files, Source{Name: path, Reader: file})
	}

	if useStdin {
		files = append(files, Source{Name: stdinSource, Reader: stdin})
	}

	if len(files) == 0 {
		return nil
	}

	return files
}

// fileID identifies a file by device and inode.
type fileID struct {
	dev uint64
	ino uint64
}

func statID(f *os.File) (fileID, bool) {
	if f == nil {
		return fileID{}, false
	}

	info, err := f.Stat()
	if err != nil {
		return fileID{}, false
	}

	return infoID(info)
}

func infoID(info os.FileInfo) (fileID, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileID{}, false
	}

	return fileID{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

func openFile(path string) (*os.File, fileID, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fileID{}, false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fileID{}, false
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fileID{}, false
	}

	id, ok := statID(file)
	if !ok {
		_ = file.Close()

		return nil, fileID{}, false
	}

	return file, id, true
}

// sourceFilesFrom retrieves the sources stored in ctx by WithSourceFiles.
func sourceFilesFrom(ctx context.Context) SourceFiles {
	s, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return s
}
