package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a JSON object mapping game ids to scores. Writes
// go through a temporary file and a rename, so a crash never leaves a
// truncated file behind.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Load(game string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return 0, err
	}
	return scores[game], nil
}

func (f *File) Save(game string, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return err
	}
	scores[game] = score

	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	return f.write(data)
}

func (f *File) read() (map[string]int, error) {
	scores := make(map[string]int)

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return scores, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return scores, nil
	}
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("decode high scores %s: %w", f.path, err)
	}
	return scores, nil
}

func (f *File) write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace high scores: %w", err)
	}
	return nil
}
