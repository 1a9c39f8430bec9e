package fileutils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// AtomicWrite writes a file atomically: gen streams into a temp sibling,
// which replaces path only after gen and fsync succeed. A failing gen
// leaves path untouched.
func AtomicWrite(path string, gen func(w io.Writer) error) error {
	tmp, err := stage(path, gen)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	return promote(tmp, path)
}

// AtomicEdit rewrites a file atomically and reports whether its content
// changed. When the staged output is byte-identical to the current file
// the rename is skipped and the file keeps its inode and mtime.
func AtomicEdit(path string, gen func(w io.Writer) error) (changed bool, err error) {
	tmp, err := stage(path, gen)
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp)

	if eq, err := sameFile(tmp, path); err != nil {
		return false, err
	} else if eq {
		return false, nil
	}

	if err := promote(tmp, path); err != nil {
		return false, err
	}
	return true, nil
}

// stage writes gen's output to a temp file next to path and returns the
// temp file's name. The caller owns removal.
func stage(path string, gen func(w io.Writer) error) (string, error) {
	dir, base := filepath.Split(path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return "", err
	}

	if err := gen(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

func promote(tmp, path string) error {
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	if df, err := os.Open(filepath.Dir(path)); err == nil {
		_ = df.Sync()
		_ = df.Close()
	}
	return nil
}

// sameFile compares two regular files by content.
func sameFile(a, b string) (bool, error) {
	aFi, err := os.Stat(a)
	if err != nil {
		return false, err
	} else if aFi.IsDir() {
		return false, fmt.Errorf("%s is a directory", a)
	}

	bFi, err := os.Stat(b)
	if err != nil {
		return false, err
	} else if bFi.IsDir() {
		return false, fmt.Errorf("%s is a directory", b)
	}

	if aFi.Size() != bFi.Size() {
		return false, nil
	}

	return sameContent(a, b)
}

func sameContent(a, b string) (bool, error) {
	aF, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer aF.Close()

	bF, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer bF.Close()

	const bufSize = 128 * 1024
	aBuf := make([]byte, bufSize)
	bBuf := make([]byte, bufSize)

	for {
		aN, aErr := io.ReadFull(aF, aBuf)
		bN, bErr := io.ReadFull(bF, bBuf)

		if aErr != nil && !errors.Is(aErr, io.EOF) && !errors.Is(aErr, io.ErrUnexpectedEOF) {
			return false, aErr
		}
		if bErr != nil && !errors.Is(bErr, io.EOF) && !errors.Is(bErr, io.ErrUnexpectedEOF) {
			return false, bErr
		}

		if aN == 0 && bN == 0 {
			return true, nil
		}
		if aN != bN || !slices.Equal(aBuf[:aN], bBuf[:bN]) {
			return false, nil
		}
	}
}
