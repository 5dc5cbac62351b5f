package model

import (
	"time"

	"github.com/araddon/dateparse"
)

// CSVTime 以 RFC3339 (UTC) 读写 CSV 的时间字段
type CSVTime struct {
	time.Time
}

func NewCSVTime(t time.Time) CSVTime {
	return CSVTime{Time: t.UTC()}
}

func (t CSVTime) MarshalCSV() (string, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.UTC().Format(time.RFC3339), nil
}

func (t *CSVTime) UnmarshalCSV(value string) error {
	if value == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}
