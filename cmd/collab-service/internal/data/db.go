package data

import (
	"fmt"
	"os"

	"collabservice/cmd/collab-service/internal/conf"
	"collabservice/pkg/database"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

// NewDB 创建数据库连接（使用统一数据库包）
func NewDB(cfg *conf.DatabaseConfig) (*gorm.DB, error) {
	dbConfig := &database.Config{
		Source:          cfg.Source,
		Host:            cfg.Host,
		Port:            cfg.Port,
		User:            cfg.User,
		Password:        cfg.Password,
		Database:        cfg.DBName,
		SSLMode:         cfg.SSLMode,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	db, err := database.NewDB(dbConfig, log.NewStdLogger(os.Stdout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// autoMigrate 自动迁移数据库表
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&CosmeticCollabDO{},
		&VideogameCollabDO{},
	)
}
