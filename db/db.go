package db

import (
	"os"

	"database/sql"

	"github.com/kpango/glg"
	_ "github.com/lib/pq" // Only want to import the interface here
)

// MaterialDB represents the database containing named material definitions,
// one manifest JSON document per material name.
type MaterialDB struct {
	Database *sql.DB
}

var materialDB *MaterialDB

// initMaterialDatabase is in charge of setting up the database connection
// pool from the environment.
func initMaterialDatabase() error {

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		glg.Errorf("DB error: %s", err.Error())
		return err
	}

	materialDB = &MaterialDB{
		Database: db,
	}

	return nil
}

// GetMaterialDBConnection is a helper for getting a connection to the DB
// based on environment variables or some other method.
func GetMaterialDBConnection() (*MaterialDB, error) {

	if materialDB == nil {
		glg.Info("Initializing db!")
		err := initMaterialDatabase()
		if err != nil {
			glg.Errorf("Failed to initialize the database: %s", err.Error())
			return nil, err
		}
	}

	return materialDB, nil
}

// GetMaterialDefinition returns the manifest JSON for one named material.
func (db *MaterialDB) GetMaterialDefinition(name string) (string, error) {

	json := ""
	err := db.Database.QueryRow("SELECT json FROM materials WHERE name = $1", name).Scan(&json)
	if err != nil {
		return "", err
	}

	return json, nil
}
