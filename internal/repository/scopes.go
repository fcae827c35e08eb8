package repository

import "gorm.io/gorm"

// courseScope course 为空时匹配不区分课程的记录
func courseScope(courseID *string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if courseID == nil {
			return db.Where("course_id IS NULL")
		}
		return db.Where("course_id = ?", *courseID)
	}
}

func courseKey(courseID *string) string {
	if courseID == nil {
		return ""
	}
	return *courseID
}

func paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
