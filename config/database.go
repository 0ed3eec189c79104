package config

import (
	"fmt"
	"time"

	"AgileMoodGo/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrateDB(); err != nil {
		return fmt.Errorf("database migration failed: %v", err)
	}

	return nil
}

func migrateDB() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamEmotion{},
		&models.EmotionRecord{},
		&models.Feedback{},
		&models.TeamMessage{},
		&models.Sprint{},
		&models.TeamInsight{},
		&models.InviteCode{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %v", err)
	}
	return nil
}
