// Package jsonfile stores problems, users and the submission and review logs
// as plain files under one data directory.
//
//	problems.json     array or {"problems": [...]}, re-read on every request
//	users.json        array of users, rewritten through a temp file and rename
//	submissions.jsonl one submission per line, append-only
//	reviews.jsonl     one review per line, append-only
package jsonfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vytor/jeeprep/internal/repository"
)

const (
	ProblemsFile    = "problems.json"
	UsersFile       = "users.json"
	SubmissionsFile = "submissions.jsonl"
	ReviewsFile     = "reviews.jsonl"
)

// files serialises every write under one data directory.
type files struct {
	dir string
	mu  sync.Mutex
}

func (f *files) path(name string) string {
	return filepath.Join(f.dir, name)
}

// readFile returns nil data for a file that does not exist yet.
func (f *files) readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// appendLine writes v as one JSON line and fsyncs before returning.
// Callers must hold f.mu.
func (f *files) appendLine(name string, v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	file, err := os.OpenFile(f.path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(line); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// readLines decodes every non-blank line of a JSON Lines file.
func readLines[T any](f *files, name string) ([]T, error) {
	data, err := f.readFile(name)
	if err != nil {
		return nil, err
	}

	items := []T{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, lineNo, err)
		}
		items = append(items, item)
	}
	return items, scanner.Err()
}

// writeJSON replaces name atomically. Callers must hold f.mu.
func (f *files) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path(name))
}

// Ping checks that the data directory is still reachable.
func (f *files) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", f.dir)
	}
	return nil
}

// NewStore wires the file-backed repositories onto dir, creating it if needed.
func NewStore(dir string) (*repository.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	f := &files{dir: dir}
	return &repository.Store{
		Problems:    &problemRepository{files: f},
		Submissions: &submissionRepository{files: f},
		Users:       newUserRepository(f),
		Reviews:     &reviewRepository{files: f},
		Health:      f,
		Close:       func() error { return nil },
	}, nil
}
