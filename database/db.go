package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"smoothblog/config"
	"smoothblog/database/model"
	"smoothblog/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.User{},
		&model.Post{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the admin account from configuration if the users table is
// empty. The admin flag can only be set here, there is no promote operation.
func initAdmin() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	hash, err := crypto.HashPassword(config.GetAdminPassword())
	if err != nil {
		return err
	}
	admin := &model.User{
		Email:    config.GetAdminEmail(),
		Username: config.GetAdminUsername(),
		Password: hash,
		IsAdmin:  true,
	}
	return db.Create(admin).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// InitDB opens the sqlite database at dbPath, migrates the schema and seeds
// the admin account on first run.
func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAdmin()
}

// ResetDB drops both tables, recreates them and reseeds the admin account.
// Destructive: all users and posts are lost.
func ResetDB() error {
	migrator := db.Migrator()
	for _, m := range []any{&model.Post{}, &model.User{}} {
		if migrator.HasTable(m) {
			if err := migrator.DropTable(m); err != nil {
				return err
			}
		}
	}
	if err := initModels(); err != nil {
		return err
	}
	return initAdmin()
}

func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation, which the
// sqlite driver translates when TranslateError is on.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
