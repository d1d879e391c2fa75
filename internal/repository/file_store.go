package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Data file names inside the data directory
const (
	PatientsFile     = "patients.txt"
	DoctorsFile      = "doctors.txt"
	AppointmentsFile = "appointments.txt"
	UsersFile        = "users.txt"
	ActivityLogFile  = "activity_log.txt"
)

// FileStore keeps each collection as one line-per-record text file.
// Writes replace the whole file through a temp file and rename.
type FileStore struct {
	dir string
	log *logrus.Logger
	mu  sync.Mutex
}

// NewFileStore creates the data directory and empty collection files if missing.
func NewFileStore(dir string, log *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	for _, name := range []string{PatientsFile, DoctorsFile, AppointmentsFile, UsersFile, ActivityLogFile} {
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_RDONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", name, err)
		}
		f.Close()
	}
	return &FileStore{dir: dir, log: log}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the absolute location of a collection file.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func loadRecords[T any](ctx context.Context, s *FileStore, name string, parse func(string) (T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, err
	}
	defer f.Close()

	items := []T{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := parse(line)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"file": name,
				"line": lineNo,
			}).Warnf("Skipping malformed record: %v", err)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return items, nil
}

// saveRecords replaces a collection file. Nothing is written when any item
// fails to encode.
func saveRecords[T any](ctx context.Context, s *FileStore, name string, items []T, format func(T) (string, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		line, err := format(item)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		lines = append(lines, line)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return os.Rename(tmp.Name(), s.Path(name))
}

// AppendLine appends one line to a file in the data directory.
func (s *FileStore) AppendLine(name, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.Path(name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// IsEmpty reports whether a collection file holds no bytes.
func (s *FileStore) IsEmpty(name string) (bool, error) {
	info, err := os.Stat(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return info.Size() == 0, nil
}
