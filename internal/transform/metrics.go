package transform

import (
	"math"
	"time"

	"Trendline/internal/pkg/util"
)

const ratePrecision = 4

// Rates 由计数派生的比率，单位为百分比
type Rates struct {
	Engagement float64
	Like       float64
	Comment    float64
}

// CalculateRates 计算互动率、点赞率与评论率，播放量为 0 时全部为 0
func CalculateRates(views, likes, comments int64) Rates {
	if views <= 0 {
		return Rates{}
	}
	v := float64(views)
	return Rates{
		Engagement: util.Round(float64(likes+comments)/v*100, ratePrecision),
		Like:       util.Round(float64(likes)/v*100, ratePrecision),
		Comment:    util.Round(float64(comments)/v*100, ratePrecision),
	}
}

// DaysToTrend 返回发布到上榜之间的整天数（向下取整），发布时间晚于上榜日期时为负数
func DaysToTrend(publishedAt, trendingDate time.Time) int {
	elapsed := trendingDate.UTC().Sub(publishedAt.UTC())
	return int(math.Floor(elapsed.Hours() / 24))
}
