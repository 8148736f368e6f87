package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/models"
)

// FileStorage persists links as JSON lines and serves reads from memory.
type FileStorage struct {
	*MemoryStorage

	mu     sync.Mutex
	file   *os.File
	logger *zap.Logger
}

// NewFileStorage opens or creates the storage file at p and loads the links
// it already holds.
func NewFileStorage(p string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE, 0660)
	if err != nil {
		return nil, err
	}

	mem, _ := CreateMemoryStorage()
	fs := &FileStorage{
		MemoryStorage: mem,
		file:          file,
		logger:        logger,
	}

	records, err := fs.load()
	if err != nil {
		file.Close()
		return nil, err
	}
	for _, l := range records {
		if _, err := mem.Write(context.Background(), l); err != nil {
			logger.Warn("skipping duplicate link in storage file", zap.String("id", l.ID), zap.Error(err))
		}
	}

	logger.Info("file storage ready", zap.String("path", p), zap.Int("links", len(records)))
	return fs, nil
}

func (fs *FileStorage) Write(ctx context.Context, l models.UsefulLink) (*models.UsefulLink, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	res, err := fs.MemoryStorage.Write(ctx, l)
	if err != nil {
		return res, err
	}

	if err := fs.appendLines([]models.UsefulLink{l}); err != nil {
		_ = fs.MemoryStorage.DeleteBatch(ctx, []models.UsefulLink{l})
		return nil, err
	}
	return res, nil
}

func (fs *FileStorage) WriteAll(ctx context.Context, ls []models.UsefulLink) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.MemoryStorage.WriteAll(ctx, ls); err != nil {
		return err
	}

	if err := fs.appendLines(ls); err != nil {
		_ = fs.MemoryStorage.DeleteBatch(ctx, ls)
		return err
	}
	return nil
}

// DeleteBatch removes the links from memory and rewrites the file.
func (fs *FileStorage) DeleteBatch(ctx context.Context, ls []models.UsefulLink) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.MemoryStorage.DeleteBatch(ctx, ls); err != nil {
		return err
	}

	remaining, err := fs.MemoryStorage.Read(ctx)
	if err != nil {
		return err
	}

	if err := fs.file.Truncate(0); err != nil {
		return err
	}
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return fs.appendLines(remaining)
}

func (fs *FileStorage) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.file.Close()
}

func (fs *FileStorage) appendLines(ls []models.UsefulLink) error {
	if _, err := fs.file.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	w := bufio.NewWriter(fs.file)
	for _, l := range ls {
		b, err := json.Marshal(l)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (fs *FileStorage) load() ([]models.UsefulLink, error) {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var records []models.UsefulLink
	scanner := bufio.NewScanner(fs.file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var l models.UsefulLink
		if err := json.Unmarshal(line, &l); err != nil {
			return nil, fmt.Errorf("failed to parse JSON line: %w", err)
		}
		records = append(records, l)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return records, nil
}
