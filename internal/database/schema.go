package database

import (
	"database/sql"
	"log"
	"strings"
)

var tables = []struct {
	name string
	ddl  string
}{
	{"users", `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'User',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`},
	{"products", `
		CREATE TABLE products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			price REAL NOT NULL,
			stock_quantity INTEGER,
			image_url TEXT,
			category TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`},
	{"services", `
		CREATE TABLE services (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			price REAL NOT NULL,
			image_url TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`},
	{"locations", `
		CREATE TABLE locations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			address TEXT NOT NULL,
			country TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			contact_number TEXT,
			email TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`},
}

// Reset drops and recreates every table, wiping all stored data.
// Failures are logged per table and do not stop the remaining tables;
// the caller keeps running either way.
func Reset(db *sql.DB) {
	for _, t := range tables {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + t.name); err != nil {
			log.Printf("Error dropping %s table: %v", t.name, err)
			continue
		}
		if _, err := db.Exec(t.ddl); err != nil {
			log.Printf("Error creating %s table: %v", t.name, err)
		} else {
			log.Printf("%s table created successfully", t.name)
		}
	}
}

// Ensure creates any missing tables without touching existing data.
func Ensure(db *sql.DB) {
	for _, t := range tables {
		ddl := strings.Replace(t.ddl, "CREATE TABLE", "CREATE TABLE IF NOT EXISTS", 1)
		if _, err := db.Exec(ddl); err != nil {
			log.Printf("Error creating %s table: %v", t.name, err)
		}
	}
}
