package staging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const manifestName = "manifest.json"

// Entry 暂存目录中的一个批次文件
type Entry struct {
	File      string    `json:"file"`
	Stage     string    `json:"stage"`
	Records   int       `json:"records"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Manifest 记录目录内所有批次，用于确定最新输入，而不是依赖文件名排序
type Manifest struct {
	Entries []Entry `json:"entries"`
}

func readManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decode manifest")
	}
	return &m, nil
}

func writeManifest(dir string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode manifest")
	}
	tmp := filepath.Join(dir, manifestName+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write manifest")
	}
	return errors.Wrap(os.Rename(tmp, filepath.Join(dir, manifestName)), "replace manifest")
}

// Latest 返回 created_at 最新的批次，时间相同时取后登记的
func (m *Manifest) Latest(stage string) (*Entry, bool) {
	var latest *Entry
	for i := range m.Entries {
		e := &m.Entries[i]
		if e.Stage != stage {
			continue
		}
		if latest == nil || !e.CreatedAt.Before(latest.CreatedAt) {
			latest = e
		}
	}
	return latest, latest != nil
}
