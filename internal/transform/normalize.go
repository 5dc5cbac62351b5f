package transform

import (
	"regexp"
	"strings"
	"time"

	"Trendline/internal/model"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

var disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}\s\p{Zs},.\-!?]`)

// CleanText 去掉字母、数字、空白和 ,.-!? 之外的字符
func CleanText(text string) string {
	return strings.TrimSpace(disallowedChars.ReplaceAllString(text, ""))
}

// NormalizeTimestamp 将带时区或不带时区的时间统一解析为 UTC，不带时区的按 UTC 处理
func NormalizeTimestamp(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	t, err := dateparse.ParseIn(strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse timestamp %q", value)
	}
	return t.UTC(), nil
}

// Deduplicate 按 (video_id, trending_date) 去重，保留输入顺序中最后一次出现的记录。
// 返回去重后的记录和被移除的条数。
func Deduplicate(records []model.TransformedRecord) ([]model.TransformedRecord, int) {
	return dedupLast(records, func(r *model.TransformedRecord) string {
		return r.ObservationKey()
	})
}

// dedupLast 每个键只保留最后一次出现的元素，幸存者保持原有相对顺序
func dedupLast[T any](items []T, key func(*T) string) ([]T, int) {
	last := make(map[string]int, len(items))
	keys := make([]string, len(items))
	for i := range items {
		keys[i] = key(&items[i])
		last[keys[i]] = i
	}

	out := make([]T, 0, len(last))
	for i, k := range keys {
		if last[k] == i {
			out = append(out, items[i])
		}
	}
	return out, len(items) - len(out)
}

// FillMissing 缺失的计数补 0，缺失的标签补空字符串
func FillMissing(rec *model.TransformedRecord, raw *model.RawRecord) {
	rec.ViewCount = deref(raw.ViewCount)
	rec.LikeCount = deref(raw.LikeCount)
	rec.CommentCount = deref(raw.CommentCount)
	rec.Tags = derefString(raw.Tags)
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
