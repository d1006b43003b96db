package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-shop-server/config"
	"github.com/oksasatya/go-shop-server/pkg/helpers"
)

type seedProduct struct {
	name        string
	description string
	stock       int
	price       float64
	discount    float64
	picture     string
	category    string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, privacy, name, lastname)
		VALUES ($1, $2, true, 'Demo', 'User')
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	categories := map[string]string{
		"Drinks": "Bottled and canned drinks",
		"Snacks": "Sweet and savory snacks",
	}
	catIDs := map[string]string{}
	for name, desc := range categories {
		var id string
		if err := db.QueryRow(`
			INSERT INTO categories (name, description) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, name, desc).Scan(&id); err != nil {
			log.Fatalf("failed to upsert category %s: %v", name, err)
		}
		catIDs[name] = id
	}
	fmt.Printf("categories ensured: %d\n", len(catIDs))

	products := []seedProduct{
		{"Cola 330ml", "Classic cola in a can", 120, 1.20, 0, "/uploads/cola.png", "Drinks"},
		{"Orange Juice 1L", "Fresh squeezed, no sugar added", 40, 2.80, 10, "/uploads/juice.png", "Drinks"},
		{"Salted Peanuts", "Roasted and salted", 75, 1.90, 0, "/uploads/peanuts.png", "Snacks"},
		{"Dark Chocolate Bar", "70% cocoa", 60, 2.50, 15, "/uploads/chocolate.png", "Snacks"},
	}
	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (name, description, stock, price, discount, picture, category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO UPDATE SET stock = EXCLUDED.stock, price = EXCLUDED.price, discount = EXCLUDED.discount, updated_at = now()
		`, p.name, p.description, p.stock, p.price, p.discount, p.picture, catIDs[p.category]); err != nil {
			log.Fatalf("failed to upsert product %s: %v", p.name, err)
		}
	}
	fmt.Printf("products ensured: %d\n", len(products))
}
