package db

import (
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DatabaseURL string `name:"database_url"`
}

func NewDBConnection(p Params) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(p.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

// Migrate brings the schema up to date for every model the service owns.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&User{},
		&Mission{},
		&Application{},
		&Favorite{},
		&Review{},
		&Boost{},
		&Session{},
		&Message{},
	)
}
