package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMapAdapter(t *testing.T) {
	t.Run("nil data yields empty map", func(t *testing.T) {
		translations, err := (&i18n.MapAdapter{}).Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, translations)
		assert.Empty(t, translations)
	})

	t.Run("returns data as is", func(t *testing.T) {
		data := map[string]map[string]any{"en": {"a": "b"}}
		translations, err := (&i18n.MapAdapter{Data: data}).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, data, translations)
	})
}

func TestFileAdapter(t *testing.T) {
	t.Run("constructor rejects missing parser or path", func(t *testing.T) {
		assert.Nil(t, i18n.NewFileAdapter(nil, "en.yaml"))
		assert.Nil(t, i18n.NewFileAdapter(i18n.NewYAMLParser(), ""))
	})

	t.Run("loads YAML file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "en.yaml", "en:\n  greeting: Hello\n  farewell: Goodbye\n")

		translations, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", translations["en"]["greeting"])
		assert.Equal(t, "Goodbye", translations["en"]["farewell"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join(t.TempDir(), "none.yaml")).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "empty.yaml", "")
		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrEmptyFile)
	})

	t.Run("parse failure", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "bad.json", "{not json")
		_, err := i18n.NewFileAdapter(i18n.NewJSONParser(), path).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "en.yaml", "en:\n  a: b\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(ctx)
		require.Error(t, err)
	})
}

func TestDirectoryAdapter(t *testing.T) {
	t.Run("merges files per language", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "en.yaml", "en:\n  hello: Hello\n")
		writeFile(t, dir, "sv.yml", "sv:\n  hello: Hej\n")
		writeFile(t, dir, "en_extra.yaml", "en:\n  bye: Bye\n")
		writeFile(t, dir, "notes.txt", "ignored")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

		translations, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", translations["en"]["hello"])
		assert.Equal(t, "Bye", translations["en"]["bye"])
		assert.Equal(t, "Hej", translations["sv"]["hello"])
	})

	t.Run("skips broken files when others load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "en.yaml", "en:\n  hello: Hello\n")
		writeFile(t, dir, "broken.yaml", "en: [unclosed")

		translations, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", translations["en"]["hello"])
	})

	t.Run("fails when nothing loads", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "broken.yaml", "en: [unclosed")

		_, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("fails on missing directory", func(t *testing.T) {
		_, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), filepath.Join(t.TempDir(), "none")).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToAccessDirectory)
	})

	t.Run("fails when path is a file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "en.yaml", "en:\n  a: b\n")
		_, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToAccessDirectory)
	})
}

func TestEmbeddedFsAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.json":  {Data: []byte(`{"en": {"hello": "Hello"}}`)},
		"locales/sv.json":  {Data: []byte(`{"sv": {"hello": "Hej"}}`)},
		"locales/readme":   {Data: []byte("skip")},
		"other/de.json":    {Data: []byte(`{"de": {"hello": "Hallo"}}`)},
		"empty/empty.json": {Data: []byte("")},
	}

	t.Run("constructor rejects missing arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewEmbeddedFsAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), nil, "locales"))
		assert.Nil(t, i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), fsys, ""))
	})

	t.Run("loads only the given directory", func(t *testing.T) {
		translations, err := i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, translations, 2)
		assert.Equal(t, "Hej", translations["sv"]["hello"])
	})

	t.Run("fails on unknown directory", func(t *testing.T) {
		_, err := i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), fsys, "missing").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("fails when all files are empty", func(t *testing.T) {
		_, err := i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), fsys, "empty").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
		require.ErrorIs(t, err, i18n.ErrEmptyFile)
	})
}

func TestNilAdapters(t *testing.T) {
	ctx := context.Background()

	_, err := i18n.NewTranslator(ctx, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), ""))
	require.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(ctx, i18n.NewFileAdapter(nil, "en.yaml"))
	require.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(ctx, i18n.NewEmbeddedFsAdapter(nil, fstest.MapFS{}, "locales"))
	require.ErrorIs(t, err, i18n.ErrNilAdapter)
}
