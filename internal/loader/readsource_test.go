package loader

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/loxc/internal/errext"
	"github.com/you-not-fish/loxc/internal/errext/exitcodes"
)

func newLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func TestReadSourceFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/u/a.lox", []byte("print 1;"), 0o644))
	logger, hook := newLogger()

	tests := []struct {
		src, pwd string
	}{
		{"a.lox", "/home/u"},
		{"u/a.lox", "/home"},
		{"/home/u/a.lox", "/elsewhere"},
		{"../u/./a.lox", "/home/v"},
	}
	for _, tt := range tests {
		sd, err := ReadSource(logger, tt.src, tt.pwd, fs, nil)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.src, sd.Name)
		assert.Equal(t, "/home/u/a.lox", sd.Path)
		assert.Equal(t, "print 1;", string(sd.Data))
	}

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "/home/u/a.lox", entry.Data["file"])
}

func TestReadSourceStdin(t *testing.T) {
	t.Parallel()

	logger, _ := newLogger()
	sd, err := ReadSource(logger, "-", "/", afero.NewMemMapFs(), bytes.NewBufferString("class A {}"))
	require.NoError(t, err)
	assert.Equal(t, StdinName, sd.Name)
	assert.Empty(t, sd.Path)
	assert.Equal(t, "class A {}", string(sd.Data))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestReadSourceErrors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir", 0o755))
	logger, _ := newLogger()

	_, err := ReadSource(logger, "missing.lox", "/", fs, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "reading missing.lox")

	_, err = ReadSource(logger, "/dir", "/", fs, nil)
	require.Error(t, err)
	var herr errext.HasHint
	assert.ErrorAs(t, err, &herr)

	_, err = ReadSource(logger, "-", "/", fs, failingReader{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	code, ok := errext.ExitCodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, exitcodes.InputError, code)
}
