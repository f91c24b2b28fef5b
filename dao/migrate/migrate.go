// Package migrate creates and evolves the schema with gormigrate.
package migrate

import (
	"fmt"
	"time"

	"devplatform/dao/model"
	"devplatform/logutils"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Run applies every pending migration. A fresh database gets the current
// schema through InitSchema and all migrations are marked as applied.
func Run(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())

	m.InitSchema(func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&model.Project{},
			&model.Activity{},
			&model.Process{},
		)
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("could not migrate: %w", err)
	}
	logutils.Log.Info("database migrated")
	return nil
}

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			// add the archive pair to projects created before the archive workflow
			ID: "202406010900",
			Migrate: func(tx *gorm.DB) error {
				// it's a good practice to copy the struct inside the function,
				// so side effects are prevented if the original struct changes during the time
				type Project struct {
					Archived   bool `gorm:"index;not null;default:false"`
					ArchivedAt *time.Time
				}
				return tx.AutoMigrate(&Project{})
			},
			Rollback: func(tx *gorm.DB) error {
				type Project struct{}
				if err := tx.Migrator().DropColumn(&Project{}, "archived_at"); err != nil {
					return err
				}
				return tx.Migrator().DropColumn(&Project{}, "archived")
			},
		},
		{
			// create processes table for the process builder
			ID: "202406150900",
			Migrate: func(tx *gorm.DB) error {
				type ProcessStep struct {
					ID          string `json:"id,omitempty"`
					Title       string `json:"title"`
					Description string `json:"description"`
					Content     string `json:"content"`
				}
				type Process struct {
					ID          uint                              `gorm:"primaryKey"`
					Name        string                            `gorm:"type:varchar(255);not null"`
					Description *string                           `gorm:"type:text"`
					Steps       datatypes.JSONType[[]ProcessStep] `gorm:"not null"`
					CreatedAt   time.Time
					UpdatedAt   time.Time
				}
				return tx.AutoMigrate(&Process{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("processes")
			},
		},
	}
}
