package ucd

import (
	"os"
	"path/filepath"

	"github.com/dropbox/miniutf/internal/legacy"
)

// Load reads UnicodeData.txt, CompositionExclusions.txt, and allkeys.txt
// from dir and returns the parsed Data. Each file is opened and closed
// independently so that a parse failure in one doesn't leave the others'
// file handles open.
func Load(dir string) (Data, error) {
	var data Data
	var err error

	err = legacy.WithCloser(func() (*os.File, error) {
		return os.Open(filepath.Join(dir, "UnicodeData.txt"))
	}, func(f *os.File) error {
		records, parseErr := ParseUnicodeData(f)
		if parseErr != nil {
			return parseErr
		}
		data.Records = records
		return nil
	})
	if err != nil {
		return Data{}, err
	}

	err = legacy.WithCloser(func() (*os.File, error) {
		return os.Open(filepath.Join(dir, "CompositionExclusions.txt"))
	}, func(f *os.File) error {
		exclusions, parseErr := ParseCompositionExclusions(f)
		if parseErr != nil {
			return parseErr
		}
		data.Exclusions = exclusions
		return nil
	})
	if err != nil {
		return Data{}, err
	}

	err = legacy.WithCloser(func() (*os.File, error) {
		return os.Open(filepath.Join(dir, "allkeys.txt"))
	}, func(f *os.File) error {
		collation, parseErr := ParseAllkeys(f)
		if parseErr != nil {
			return parseErr
		}
		data.Collation = collation
		return nil
	})
	if err != nil {
		return Data{}, err
	}

	return data, nil
}
