package youtube

// videoListResponse videos?chart=mostPopular 的响应体，仅保留抓取用到的字段
type videoListResponse struct {
	Items []videoItem `json:"items"`
	Error *apiError   `json:"error,omitempty"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string   `json:"title"`
		ChannelID    string   `json:"channelId"`
		ChannelTitle string   `json:"channelTitle"`
		CategoryID   string   `json:"categoryId"`
		PublishedAt  string   `json:"publishedAt"`
		Tags         []string `json:"tags"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    *string `json:"viewCount"`
		LikeCount    *string `json:"likeCount"`
		CommentCount *string `json:"commentCount"`
	} `json:"statistics"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
