package models

// AppSettings is a singleton row (id = 1) carrying branding and
// localization preferences for the restaurant.
type AppSettings struct {
	ID             int64   `gorm:"column:id;primaryKey" json:"-"`
	RestaurantName string  `gorm:"column:restaurant_name" json:"restaurant_name"`
	LogoPath       *string `gorm:"column:logo_path" json:"logo_path"`
	PhotoPath      *string `gorm:"column:photo_path" json:"photo_path"`
	Language       string  `gorm:"column:language;default:en" json:"language"`
	KakaoLink      string  `gorm:"column:kakao_link" json:"kakao_link"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}
