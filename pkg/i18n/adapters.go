package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	return parseFile(ctx, a.parser, a.path, os.ReadFile)
}

// DirectoryAdapter loads and merges every file in a directory the parser supports.
// Files that fail to load are skipped as long as at least one file succeeds.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' is not a directory", ErrFailedToAccessDirectory, a.path)
	}

	return loadDir(ctx, a.parser, os.DirFS(a.path), ".", a.path)
}

// EmbeddedFsAdapter loads catalogs from a directory inside an fs.FS, usually an embed.FS.
type EmbeddedFsAdapter struct {
	parser Parser
	fs     fs.FS
	dir    string
}

// NewEmbeddedFsAdapter creates a new EmbeddedFsAdapter instance.
// Returns nil if parser or fsys is nil, or dir is empty.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.FS, dir string) *EmbeddedFsAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &EmbeddedFsAdapter{parser: parser, fs: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface
func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	return loadDir(ctx, a.parser, a.fs, a.dir, a.dir)
}

// loadDir parses every supported file in dir and merges the catalogs per language.
// label is only used in error messages.
func loadDir(ctx context.Context, parser Parser, fsys fs.FS, dir, label string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	var skipped []error
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if ext == "" || !parser.SupportsFileExtension(ext) {
			continue
		}

		name := path.Join(dir, entry.Name())
		translations, err := parseFile(ctx, parser, name, func(name string) ([]byte, error) {
			return fs.ReadFile(fsys, name)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			skipped = append(skipped, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}

		mergeTranslations(all, translations)
		loaded++
	}

	if loaded == 0 {
		return nil, errors.Join(append([]error{fmt.Errorf("%w in '%s'", ErrNoTranslationFiles, label)}, skipped...)...)
	}

	return all, nil
}

// parseFile reads name with read, honouring ctx while the read is in flight, and parses it.
func parseFile(ctx context.Context, parser Parser, name string, read func(string) ([]byte, error)) (map[string]map[string]any, error) {
	if parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if name == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	type result struct {
		content []byte
		err     error
	}
	done := make(chan result, 1)
	go func() {
		content, err := read(name)
		done <- result{content: content, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case res = <-done:
	}

	if res.err != nil {
		return nil, errors.Join(ErrFailedToReadFile, res.err)
	}
	if len(res.content) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEmptyFile, name)
	}

	translations, err := parser.Parse(ctx, string(res.content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if translations == nil {
		return nil, fmt.Errorf("parser returned nil translations for file '%s'", name)
	}

	return translations, nil
}

func mergeTranslations(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		maps.Copy(dst[lang], translations)
	}
}
