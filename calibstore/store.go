package calibstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/complexo-io/complexo/errs"
)

const (
	fileExt    = "yaml"
	latestName = "latest." + fileExt
)

var profileIDPattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Store is a file-backed calibration record store rooted at Dir. The
// zero value is not usable; construct with NewStore.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir, or at the user's per-user
// local application data directory under "complexo/calibration" if
// dir is empty.
func NewStore(dir string) (Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Store{}, errs.PersistenceFailure.Wrap(err, "resolve user config dir")
		}
		dir = filepath.Join(base, "complexo", "calibration")
	}
	return Store{Dir: dir}, nil
}

func sanitizeProfileID(id string) string {
	return profileIDPattern.ReplaceAllString(id, "-")
}

func (s Store) profilePath(id string) string {
	return filepath.Join(s.Dir, fmt.Sprintf("calibration-%s.%s", sanitizeProfileID(id), fileExt))
}

func (s Store) latestPath() string {
	return filepath.Join(s.Dir, latestName)
}

// Save validates and persists r, writing both its per-profile file
// and the "latest" alias. Both writes go through writeAtomic (temp
// file + rename), so a concurrent Load sees either the old or the new
// content, never a partial write.
func (s Store) Save(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return errs.Cancelled.New("calibration save cancelled before write")
	}
	if err := validateRecord(r); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errs.PersistenceFailure.Wrap(err, "create calibration store directory")
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return errs.PersistenceFailure.Wrap(err, "marshal calibration record")
	}

	id := r.Hardware.ID()
	if err := writeAtomic(s.profilePath(id), data); err != nil {
		return err
	}
	return writeAtomic(s.latestPath(), data)
}

// writeAtomic writes data to a temp file in path's directory, then
// renames it over path. Rename is atomic on every platform this store
// targets, so readers never observe a partially-written file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".calibstore-*.tmp")
	if err != nil {
		return errs.PersistenceFailure.Wrap(err, "create temp calibration file")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errs.PersistenceFailure.Wrap(err, "write temp calibration file")
	}
	if err := tmp.Close(); err != nil {
		return errs.PersistenceFailure.Wrap(err, "close temp calibration file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errs.PersistenceFailure.Wrap(err, "rename calibration file into place")
	}
	return nil
}

// LoadLatest returns the most recently saved Record.
func (s Store) LoadLatest() (Record, error) {
	return s.load(s.latestPath())
}

// LoadProfile returns the Record saved for the given hardware profile
// id.
func (s Store) LoadProfile(id string) (Record, error) {
	return s.load(s.profilePath(id))
}

func (s Store) load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, errs.PersistenceFailure.Wrap(err, "read calibration file")
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, errs.PersistenceFailure.Wrap(err, "unmarshal calibration file")
	}
	return r, nil
}

// ListProfiles enumerates every saved profile id in the store.
func (s Store) ListProfiles() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, errs.PersistenceFailure.Wrap(err, "list calibration store directory")
	}
	prefix, suffix := "calibration-", "."+fileExt
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == latestName {
			continue
		}
		if len(name) > len(prefix)+len(suffix) && name[:len(prefix)] == prefix && name[len(name)-len(suffix):] == suffix {
			ids = append(ids, name[len(prefix):len(name)-len(suffix)])
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// IsRecent reports whether the latest Record's CompletedAt falls
// within window of now.
func (s Store) IsRecent(window time.Duration) (bool, error) {
	r, err := s.LoadLatest()
	if err != nil {
		return false, err
	}
	return time.Since(r.CompletedAt) <= window, nil
}
