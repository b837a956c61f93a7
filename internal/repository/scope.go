package repository

import "gorm.io/gorm"

// Visible — единый предикат видимости для всех списочных запросов:
// запись принадлежит организации актора и не удалена мягко.
// Применяется на границе построения запроса, а не в местах вызова.
func Visible(orgID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ? AND is_active = ?", orgID, true)
	}
}

// Active ограничивает выборку немягко-удалёнными записями
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
