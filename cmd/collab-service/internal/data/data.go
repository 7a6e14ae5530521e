package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"collabservice/cmd/collab-service/internal/conf"
	"collabservice/cmd/collab-service/internal/domain"
	"collabservice/pkg/database"
	"collabservice/pkg/health"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Data 数据层结构，持有两种资源各自选定后端的仓储
type Data struct {
	db *gorm.DB

	Cosmetics  domain.CosmeticCollabRepository
	Videogames domain.VideogameCollabRepository
	Health     *health.HealthChecker
}

// NewData 按配置为每种资源构建仓储
//
// 后端："postgres" 使用共享的 gorm 连接（进程内只打开一次），
// "csv" 使用各自的平面文件。返回的 cleanup 在关停时关闭数据库连接池。
func NewData(cfg *conf.Config, logger *zap.Logger) (*Data, func(), error) {
	d := &Data{Health: health.NewHealthChecker()}

	// 任一资源选择 postgres 时才打开数据库
	openDB := func() (*gorm.DB, error) {
		if d.db != nil {
			return d.db, nil
		}
		db, err := NewDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		d.db = db
		return db, nil
	}

	switch cfg.Storage.Cosmetics.Backend {
	case "postgres":
		db, err := openDB()
		if err != nil {
			return nil, nil, err
		}
		d.Cosmetics = NewCosmeticCollabRepository(db)
		d.Health.Register(health.NewStoreChecker("cosmetics_db", pingDB(db)))
	case "csv":
		d.Cosmetics = NewCosmeticCollabFileRepository(cfg.Storage.Cosmetics.CSVPath)
		d.Health.Register(health.NewStoreChecker("cosmetics_csv", pingCSV(cfg.Storage.Cosmetics.CSVPath)))
	default:
		return nil, nil, fmt.Errorf("unknown cosmetics backend: %q", cfg.Storage.Cosmetics.Backend)
	}

	switch cfg.Storage.Videogames.Backend {
	case "postgres":
		db, err := openDB()
		if err != nil {
			return nil, nil, err
		}
		d.Videogames = NewVideogameCollabRepository(db)
		d.Health.Register(health.NewStoreChecker("videogames_db", pingDB(db)))
	case "csv":
		d.Videogames = NewVideogameCollabFileRepository(cfg.Storage.Videogames.CSVPath)
		d.Health.Register(health.NewStoreChecker("videogames_csv", pingCSV(cfg.Storage.Videogames.CSVPath)))
	default:
		return nil, nil, fmt.Errorf("unknown videogames backend: %q", cfg.Storage.Videogames.Backend)
	}

	logger.Info("storage backends initialized",
		zap.String("cosmetics", cfg.Storage.Cosmetics.Backend),
		zap.String("videogames", cfg.Storage.Videogames.Backend),
	)

	cleanup := func() {
		if d.db != nil {
			if err := database.Close(d.db); err != nil {
				logger.Error("failed to close database", zap.Error(err))
			}
		}
	}
	return d, cleanup, nil
}

// pingDB 数据库探活
func pingDB(db *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// pingCSV 检查 CSV 文件所在目录可达；文件本身允许尚不存在
func pingCSV(path string) func(context.Context) error {
	return func(context.Context) error {
		_, err := os.Stat(filepath.Dir(path))
		return err
	}
}
