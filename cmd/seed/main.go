package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookshelf/internal/config"
	"bookshelf/internal/db"
	"bookshelf/internal/model"
	"bookshelf/internal/repository"
)

// Seed creates an initial librarian account and a starter catalog so a fresh
// deployment has someone who can manage books. Existing rows are left alone,
// so running it twice is harmless.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Book{}, &model.Reservation{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	bookRepo := repository.NewBookRepository(gormDB)

	name := os.Getenv("SEED_LIBRARIAN_NAME")
	if name == "" {
		name = "admin"
	}
	password := os.Getenv("SEED_LIBRARIAN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_LIBRARIAN_PASSWORD must be set")
	}

	if _, err := userRepo.FindByName(ctx, name); err == nil {
		log.Printf("Librarian %q already exists, skipping", name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up librarian: %v", err)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		librarian := &model.User{
			Name:         name,
			PasswordHash: string(hash),
			Role:         model.RoleLibrarian,
		}
		if err := userRepo.Create(ctx, librarian); err != nil {
			log.Fatalf("Failed to create librarian: %v", err)
		}
		log.Printf("Created librarian %q (id %d)", name, librarian.ID)
	}

	seeded := 0
	for _, book := range starterCatalog() {
		if book.ISBN != nil {
			if _, err := bookRepo.FindByISBN(ctx, *book.ISBN); err == nil {
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Fatalf("Failed to look up book %q: %v", book.Title, err)
			}
		}
		if err := bookRepo.Create(ctx, &book); err != nil {
			log.Fatalf("Failed to create book %q: %v", book.Title, err)
		}
		seeded++
	}
	log.Printf("Seed complete: %d books created", seeded)
}

func starterCatalog() []model.Book {
	return []model.Book{
		{Title: "Dune", Author: "Frank Herbert", ISBN: ptr("9780441013593"), Available: true, PublicationYear: intPtr(1965)},
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", ISBN: ptr("9780441478125"), Available: true, PublicationYear: intPtr(1969)},
		{Title: "Snow Crash", Author: "Neal Stephenson", ISBN: ptr("9780553380958"), Available: true, PublicationYear: intPtr(1992)},
	}
}

func ptr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
