package model

// SummaryStats 汇总统计
type SummaryStats struct {
	TotalVideos   int64
	TotalRecords  int64
	AvgViews      float64
	MaxViews      int64
	AvgEngagement float64
}

// TopVideo 按播放量排序的单条观测
type TopVideo struct {
	Title          string
	ChannelName    string
	ViewCount      int64
	EngagementRate float64
}

// CategoryPerformance 分类维度的平均表现
type CategoryPerformance struct {
	CategoryName  string
	VideoCount    int64
	AvgViews      float64
	AvgEngagement float64
}

// DurationBucket 时长分桶的平均互动率
type DurationBucket struct {
	Bucket        string
	Videos        int64
	AvgEngagement float64
}

// ChannelPerformance 频道维度的平均表现
type ChannelPerformance struct {
	ChannelName   string
	Videos        int64
	AvgViews      float64
	AvgEngagement float64
}
