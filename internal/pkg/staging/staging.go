package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// ErrNoStagedInput 暂存目录中没有可用的批次
var ErrNoStagedInput = errors.New("no staged input found")

// Stage 某一阶段（raw / transformed）的暂存目录
type Stage struct {
	dir  string
	name string
	now  func() time.Time
}

func New(dir, name string) *Stage {
	return &Stage{dir: dir, name: name, now: time.Now}
}

// WithClock 替换时间来源，用于文件名与 created_at
func (s *Stage) WithClock(now func() time.Time) *Stage {
	s.now = now
	return s
}

func (s *Stage) Dir() string {
	return s.dir
}

// Write 将记录写为 youtube_<stage>_YYYYMMDD_HHMMSS.csv 并登记到 manifest
func Write[T any](s *Stage, records []T) (*Entry, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create staging dir")
	}

	created := s.now()
	path, file, err := s.createFile(created)
	if err != nil {
		return nil, err
	}
	if err := gocsv.MarshalFile(&records, file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, errors.Wrap(err, "encode csv")
	}
	if err := file.Close(); err != nil {
		return nil, errors.Wrap(err, "close csv")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat csv")
	}

	m, err := readManifest(s.dir)
	if err != nil {
		return nil, err
	}
	entry := Entry{
		File:      filepath.Base(path),
		Stage:     s.name,
		Records:   len(records),
		Size:      info.Size(),
		CreatedAt: created.UTC(),
	}
	m.Entries = append(m.Entries, entry)
	if err := writeManifest(s.dir, m); err != nil {
		return nil, err
	}
	return &entry, nil
}

// createFile 同一秒内多次写入时追加序号，避免覆盖已有批次
func (s *Stage) createFile(created time.Time) (string, *os.File, error) {
	base := fmt.Sprintf("youtube_%s_%s", s.name, created.Format("20060102_150405"))
	for i := 0; ; i++ {
		name := base + ".csv"
		if i > 0 {
			name = fmt.Sprintf("%s_%d.csv", base, i)
		}
		path := filepath.Join(s.dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", nil, errors.Wrap(err, "create csv")
		}
		return path, file, nil
	}
}

// Latest 返回 manifest 中最新的批次
func (s *Stage) Latest() (*Entry, error) {
	m, err := readManifest(s.dir)
	if err != nil {
		return nil, err
	}
	entry, ok := m.Latest(s.name)
	if !ok {
		return nil, errors.Wrapf(ErrNoStagedInput, "%s in %s", s.name, s.dir)
	}
	return entry, nil
}

// ReadLatest 读取最新批次的全部记录
func ReadLatest[T any](s *Stage) ([]T, *Entry, error) {
	entry, err := s.Latest()
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(filepath.Join(s.dir, entry.File))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, errors.Wrapf(ErrNoStagedInput, "%s listed in manifest but missing", entry.File)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "open csv")
	}
	defer file.Close()

	records := make([]T, 0, entry.Records)
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, nil, errors.Wrapf(err, "decode %s", entry.File)
	}
	return records, entry, nil
}
