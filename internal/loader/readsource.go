// Package loader reads Lox source files from a file system or stdin.
package loader

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/you-not-fish/loxc/internal/errext"
	"github.com/you-not-fish/loxc/internal/errext/exitcodes"
)

// StdinName is the display name of source read from stdin.
const StdinName = "<stdin>"

// SourceData is a loaded source file.
type SourceData struct {
	Name string // display name used in positions
	Path string // resolved path, empty for stdin
	Data []byte
}

// ReadSource reads src, which is "-" for stdin or a path relative to pwd.
func ReadSource(logger logrus.FieldLogger, src, pwd string, fs afero.Fs, stdin io.Reader) (*SourceData, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, inputError(fmt.Errorf("reading stdin: %w", err))
		}
		logger.WithField("bytes", len(data)).Debug("Loaded source from stdin")
		return &SourceData{Name: StdinName, Data: data}, nil
	}

	path := src
	if !filepath.IsAbs(path) {
		path = filepath.Join(pwd, path)
	}
	path = filepath.Clean(path)

	info, err := fs.Stat(path)
	if err != nil {
		return nil, inputError(fmt.Errorf("reading %s: %w", src, err))
	}
	if info.IsDir() {
		return nil, errext.WithHint(inputError(fmt.Errorf("reading %s: is a directory", src)),
			"pass the .lox files inside it instead")
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, inputError(fmt.Errorf("reading %s: %w", src, err))
	}
	logger.WithFields(logrus.Fields{"file": path, "bytes": len(data)}).Debug("Loaded source")

	return &SourceData{Name: src, Path: path, Data: data}, nil
}

func inputError(err error) error {
	return errext.WithExitCodeIfNone(err, exitcodes.InputError)
}
