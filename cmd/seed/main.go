package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Gothsec/centro-digital/config"
	"github.com/Gothsec/centro-digital/models"
	"github.com/Gothsec/centro-digital/services"
	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// defaultCategories is the directory taxonomy shown in the category carousel
var defaultCategories = []models.Category{
	{Name: "Cafés", Icon: "coffee"},
	{Name: "Restaurantes", Icon: "utensils"},
	{Name: "Retail", Icon: "shopping-bag"},
	{Name: "Librerías", Icon: "book"},
	{Name: "Belleza y Bienestar", Icon: "scissors"},
	{Name: "Tecnología", Icon: "laptop"},
	{Name: "Automotriz", Icon: "car"},
	{Name: "Servicios para Mascotas", Icon: "dog"},
	{Name: "Moda", Icon: "shirt"},
	{Name: "Hogar y Jardín", Icon: "home"},
	{Name: "Servicios Profesionales", Icon: "briefcase"},
	{Name: "Fitness", Icon: "dumbbell"},
	{Name: "Salud", Icon: "stethoscope"},
	{Name: "Educación", Icon: "graduation-cap"},
	{Name: "Arte y Cultura", Icon: "palette"},
}

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the category taxonomy and creates the first admin account
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CENTRO DIGITAL - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	seedCategories()
	seedAdmin()
}

func seedCategories() {
	created := 0
	for _, category := range defaultCategories {
		category.Slug = slug.Make(category.Name)

		var existing models.Category
		err := config.Gorm.Where("name = ?", category.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}

		if err := config.Gorm.Create(&category).Error; err != nil {
			log.Fatalf("Failed to create category %q: %v", category.Name, err)
		}
		created++
	}
	log.Printf("✓ Categories seeded (%d created, %d already present)", created, len(defaultCategories)-created)
}

func seedAdmin() {
	email, password, name := getAdminCredentials()

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	if !services.ValidateAdminPassword(password) {
		fmt.Println("❌ Password must be at least 8 characters")
		os.Exit(1)
	}

	passwordHash, err := services.HashAdminPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	admin := models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Status:       "active",
	}

	if err := config.Gorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /admin/login with email and password")
}

func getAdminCredentials() (email, password, name string) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Admin email: ")
	email, _ = reader.ReadString('\n')
	email = strings.TrimSpace(email)

	fmt.Print("Admin password: ")
	password, _ = reader.ReadString('\n')
	password = strings.TrimSpace(password)

	fmt.Print("Admin name: ")
	name, _ = reader.ReadString('\n')
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		fmt.Println("❌ Email, password and name are all required")
		os.Exit(1)
	}
	return email, password, name
}
