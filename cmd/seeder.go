package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with an accountant login and sample employees and projects.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		username := "Patricia"
		hash, err := bcrypt.GenerateFromPassword([]byte("pati2025"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE username = ?", username).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("accountant user already exists:", username)
		} else {
			if err := db.Exec("INSERT INTO users (username, password, role, created_at, updated_at) VALUES (?, ?, 'accountant', now(), now())", username, string(hash)).Error; err != nil {
				log.Fatalf("failed to insert accountant user: %v", err)
			}
			fmt.Println("Seeded accountant user:", username)
		}

		employees := []struct {
			Name string
			Rate string
		}{
			{"Juan Martinez", "20.00"},
			{"Carlos Lopez", "22.00"},
			{"Miguel Hernandez", "25.00"},
		}

		for _, e := range employees {
			var id int64
			row := db.Raw("SELECT id FROM employees WHERE name = ?", e.Name).Row()
			if err := row.Scan(&id); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO employees (name, hourly_rate, created_at, updated_at) VALUES (?, ?, now(), now())", e.Name, e.Rate).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Name, err)
			}
			fmt.Println("Seeded employee:", e.Name)
		}

		projects := []struct {
			Name      string
			Materials string
			Labor     string
			Charged   string
		}{
			{"Lakeside Drive Repaint", "850.00", "1200.00", "2600.00"},
			{"Office Drywall Repair", "430.00", "760.00", "1500.00"},
		}

		for _, p := range projects {
			var id int64
			row := db.Raw("SELECT id FROM projects WHERE name = ?", p.Name).Row()
			if err := row.Scan(&id); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO projects (name, materials_cost, labor_cost, amount_charged, created_at) VALUES (?, ?, ?, ?, now())", p.Name, p.Materials, p.Labor, p.Charged).Error; err != nil {
				log.Fatalf("failed to insert project %s: %v", p.Name, err)
			}
			fmt.Println("Seeded project:", p.Name)
		}

		fmt.Println("Seeding complete")
	},
}
