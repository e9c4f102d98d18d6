package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// Seed data for local development: one admin, one regular user, and a
// few tasks owned by the regular user. Safe to run repeatedly; existing
// emails are skipped.
var seedUsers = []struct {
	name     string
	email    string
	password string
	role     string
}{
	{"Admin", "admin@example.com", "admin123", model.RoleAdmin},
	{"Alice", "alice@example.com", "alice123", model.RoleUser},
}

var seedTasks = []struct {
	ownerEmail  string
	title       string
	description string
	status      string
}{
	{"alice@example.com", "Buy milk", "Two liters, semi-skimmed", model.TaskStatusPending},
	{"alice@example.com", "Book dentist appointment", "", model.TaskStatusPending},
	{"alice@example.com", "Submit expense report", "September receipts", model.TaskStatusCompleted},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	usersByEmail := make(map[string]*model.User)
	created := 0
	for _, item := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, item.email)
		if err == nil {
			log.Printf("User %s already exists, skipping", item.email)
			usersByEmail[item.email] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up user %s: %v", item.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(item.password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", item.email, err)
		}

		user := &model.User{
			Name:         item.name,
			Email:        item.email,
			PasswordHash: string(hash),
			Role:         item.role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", item.email, err)
		}
		usersByEmail[item.email] = user
		created++
	}
	log.Printf("Seeded %d users (%d already present)", created, len(seedUsers)-created)

	created = 0
	for _, item := range seedTasks {
		owner, ok := usersByEmail[item.ownerEmail]
		if !ok || owner == nil {
			log.Printf("Skipping task %q: owner %s missing", item.title, item.ownerEmail)
			continue
		}

		existing, err := taskRepo.ListByOwner(ctx, owner.ID)
		if err != nil {
			log.Fatalf("Failed to list tasks for %s: %v", item.ownerEmail, err)
		}
		if hasTitle(existing, item.title) {
			log.Printf("Task %q already exists for %s, skipping", item.title, item.ownerEmail)
			continue
		}

		task := &model.Task{
			Title:       item.title,
			Description: item.description,
			Status:      item.status,
			OwnerID:     owner.ID,
		}
		if err := taskRepo.Create(ctx, task); err != nil {
			log.Fatalf("Failed to create task %q: %v", item.title, err)
		}
		created++
	}
	log.Printf("Seeded %d tasks", created)

	log.Println("Seed completed")
}

func hasTitle(tasks []model.Task, title string) bool {
	for _, t := range tasks {
		if t.Title == title {
			return true
		}
	}
	return false
}
