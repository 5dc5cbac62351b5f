package transform

import (
	"regexp"
	"strconv"

	"Trendline/internal/pkg/util"
)

var durationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration 将 PT[nH][nM][nS] 形式的时长转换为分钟数，保留两位小数。
// 无法解析的输入返回 0。
func ParseDuration(duration string) float64 {
	m := durationRegex.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}

	var parts [3]int64
	for i, s := range m[1:] {
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0
		}
		parts[i] = n
	}

	hours, minutes, seconds := parts[0], parts[1], parts[2]
	total := float64(hours*60+minutes) + float64(seconds)/60
	return util.Round(total, 2)
}
