package loader

import (
	"bytes"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from the given .env files into the
// process environment. Files are read through fsys, which defaults to the
// OS. Variables that are already set are not overridden. Missing files are
// skipped. With no paths, ".env" in the working directory is tried.
func LoadDotEnv(fsys FileSystem, paths ...string) error {
	if fsys == nil {
		fsys = DefaultFS()
	}
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		data, err := readFile(fsys, p)
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}

		vars, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return &ParseError{Path: p, Message: err.Error(), Err: err}
		}
		for key, value := range vars {
			if _, set := os.LookupEnv(key); set {
				continue
			}
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setting %s from %s: %w", key, p, err)
			}
		}
	}
	return nil
}
