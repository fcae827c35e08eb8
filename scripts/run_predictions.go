// 手动触发一次批量预测
//
// 定时批量预测由主应用按 prediction.batch_interval_minutes 执行，此脚本用于首次部署、
// 特征数据补录后或本地调试。可选地先从 YAML 文件导入一批学习者特征。
//
// 用法: go run scripts/run_predictions.go [-fixture features.yaml] [-user <id>] [-course <id>] [-types at_risk,engagement]

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/repository"
	"learner_insights_backend/internal/service"
	"learner_insights_backend/pkg/database"
	"learner_insights_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

// featureFixture 特征导入文件格式
type featureFixture struct {
	Learners []model.UserFeatures `yaml:"learners"`
}

func loadFixture(path string) ([]model.UserFeatures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f featureFixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range f.Learners {
		if f.Learners[i].ComputedAt.IsZero() {
			f.Learners[i].ComputedAt = now
		}
	}
	return f.Learners, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func main() {
	fixture := flag.String("fixture", "", "先导入的学习者特征 YAML 文件")
	userID := flag.String("user", "", "只预测指定学习者")
	courseID := flag.String("course", "", "只预测指定课程")
	types := flag.String("types", "", "预测类型，逗号分隔，默认 completion,engagement,at_risk")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	ctx := context.Background()
	features := repository.NewFeatureRepository(db)

	if *fixture != "" {
		rows, err := loadFixture(*fixture)
		if err != nil {
			log.Fatalf("读取特征文件失败: %v", err)
		}
		if err := features.Save(ctx, rows); err != nil {
			log.Fatalf("导入特征失败: %v", err)
		}
		log.Printf("已导入 %d 条学习者特征", len(rows))
	}

	req := service.GenerateRequest{UserID: optional(*userID), CourseID: optional(*courseID)}
	if *types != "" {
		for _, t := range strings.Split(*types, ",") {
			req.PredictionTypes = append(req.PredictionTypes, model.PredictionType(strings.TrimSpace(t)))
		}
	}

	svc := service.NewPredictionService(
		features,
		repository.NewPredictionRepository(db),
		repository.NewAlertRepository(db),
		nil,
		service.NewReportArchive(service.NewStorageProvider(&cfg.Storage)),
		cfg.Prediction,
	)

	log.Println("手动触发批量预测...")
	result, err := svc.Generate(ctx, req)
	if err != nil {
		log.Fatalf("批量预测失败: %v", err)
	}

	summary, _ := json.MarshalIndent(map[string]interface{}{
		"predictionsGenerated": result.PredictionsGenerated,
		"alertsCreated":        result.AlertsCreated,
		"failures":             result.Failures,
		"reportUrl":            result.ReportURL,
	}, "", "  ")
	log.Printf("完成！\n%s", summary)
}
