package database

import (
	"fmt"
	"log"
	"time"

	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 预测和预警的时间字段统一按 UTC 读写
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// 批量预测在事务中一次写入全部结果，连接数不需要很大
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表。特征表由外部特征提取任务写入，这里也一并迁移以便本地开发
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserFeatures{},
		&model.LearnerPrediction{},
		&model.AtRiskAlert{},
		&model.RoadmapPhase{},
		&model.RoadmapItem{},
		&model.RoadmapMilestone{},
		&model.QuizSessionResult{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	log.Println("Database migration completed")
	return nil
}
