package database

import (
	"strings"

	"claims-processor/src/audit"
	"claims-processor/src/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectToDatabase opens the claims store. Postgres DSNs (key=value or URL
// form) get the postgres driver, anything else is treated as a sqlite path.
func ConnectToDatabase(connectionString string) (*gorm.DB, error) {
	config := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	if strings.HasPrefix(connectionString, "postgres://") || strings.Contains(connectionString, "host=") {
		return gorm.Open(postgres.Open(connectionString), config)
	}
	return gorm.Open(sqlite.Open(connectionString), config)
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Claim{},
		&model.ClaimAssessment{},
		&model.InsurancePolicy{},
		&audit.LogAuditEntry{},
	)
}
