package model

type Category struct {
	CategoryID   int    `gorm:"primaryKey;autoIncrement:false"`
	CategoryName string `gorm:"type:varchar(64);not null"`
}

func (Category) TableName() string {
	return "categories"
}
