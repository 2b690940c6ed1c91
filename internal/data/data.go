// Package data holds the default lexicon files, embedded into the binary.
package data

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"path"
)

//go:embed *.tsv numbers/*.tsv time/*.tsv measure/*.tsv
var files embed.FS

// Reader returns a reader for the given lexicon file, e.g. "time/to_hour.tsv".
func Reader(file string) (io.Reader, error) {
	data, err := fs.ReadFile(files, Path(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Path returns the path of a lexicon file within the embedded file system.
func Path(file string) string {
	return path.Clean(file)
}

// Files lists all embedded lexicon files.
func Files() ([]string, error) {
	var names []string
	err := fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tsv" {
			names = append(names, p)
		}
		return nil
	})
	return names, err
}
