package models

import "gorm.io/gorm"

// AutoMigrate creates the catalog tables from the model tags.
// Production databases are migrated with the SQL files in database/migrations;
// this is used for throwaway stores such as the test database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Department{}, &Category{}, &Product{})
}
