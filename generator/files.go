package generator

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/logger"
)

const userWriteOtherRead = fs.FileMode(0644)

// Files holds the generators of the output files of a run.
type Files struct {
	Command  string
	PkgName  string
	BuildTag string

	names      []string
	generators map[string]*Generator
}

func NewFiles(command, pkgName, buildTag string) *Files {
	return &Files{Command: command, PkgName: pkgName, BuildTag: buildTag, generators: map[string]*Generator{}}
}

// Get returns the generator of the file, creating it on first access.
func (f *Files) Get(fileName string) *Generator {
	if g, ok := f.generators[fileName]; ok {
		return g
	}
	g := New(f.Command, f.PkgName, f.BuildTag)
	f.generators[fileName] = g
	f.names = append(f.names, fileName)
	return g
}

// Names returns the output file names in the order of the first access.
func (f *Files) Names() []string {
	return append([]string{}, f.names...)
}

func (f *Files) IsEmpty() bool {
	for _, g := range f.generators {
		if !g.IsEmpty() {
			return false
		}
	}
	return true
}

// Render formats every non-empty file.
func (f *Files) Render() (map[string][]byte, error) {
	result := make(map[string][]byte, len(f.names))
	for _, name := range f.names {
		g := f.generators[name]
		if g.IsEmpty() {
			continue
		}
		src, err := g.FormatSrc()
		if err != nil {
			return nil, errors.Wrapf(err, "go src code formatting of %s", name)
		}
		result[name] = src
	}
	return result, nil
}

// Write stores the files only after all of them are rendered.
func (f *Files) Write() error {
	rendered, err := f.Render()
	if err != nil {
		return err
	}
	for _, name := range f.names {
		src, ok := rendered[name]
		if !ok {
			continue
		}
		if err := os.WriteFile(name, src, userWriteOtherRead); err != nil {
			return errors.Wrap(err, "writing output")
		}
		logger.Infof("generated %s", name)
	}
	return nil
}
