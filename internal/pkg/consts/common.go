package consts

const (
	DefaultRegion     = "US"
	DefaultMaxResults = 50
)

const (
	StageRaw         = "raw"
	StageTransformed = "transformed"
)

// Categories YouTube 视频分类，加载前写入 categories 表
var Categories = map[int]string{
	1:  "Film & Animation",
	2:  "Autos & Vehicles",
	10: "Music",
	15: "Pets & Animals",
	17: "Sports",
	20: "Gaming",
	22: "People & Blogs",
	23: "Comedy",
	24: "Entertainment",
	25: "News & Politics",
	26: "Howto & Style",
	27: "Education",
	28: "Science & Technology",
}

const UnknownCategory = "General"
