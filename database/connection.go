package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the local SQLite database that persists the operator's
// session across restarts. path is the database file on disk.
func Connect(path string) {
	var err error

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Failed to open session database: %v", err)
		panic(err)
	}

	log.Println("✅ Session database connected successfully!")
}
