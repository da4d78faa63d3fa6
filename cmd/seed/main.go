package main

import (
	"log"
	"os"
	"time"

	"roombuddy-be/internal/model"
	"roombuddy-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Notification Types...")
	SeedNotificationTypes(db)

	color.Cyan("Seeding Demo Users and Posts...")
	seedDemoData(db)

	color.Green("✅ Seeding completed!")
}

func seedDemoData(db *gorm.DB) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	pw := string(hash)
	now := time.Now()

	users := []model.User{
		{
			Email:            "arjun@example.com",
			PasswordHash:     &pw,
			FullName:         "Arjun Mehta",
			Role:             "user",
			Status:           "active",
			EmailVerified:    true,
			EmailVerifiedAt:  &now,
			Phone:            "+919876543210",
			Age:              26,
			Gender:           "male",
			Occupation:       "Software Engineer",
			City:             "Bangalore",
			About:            "Early riser, mostly work from office. Looking for a quiet flat near Indiranagar.",
			Interests:        datatypes.JSONSlice[string]{"cricket", "cooking", "gaming"},
			Vegetarian:       true,
			ProfileCompleted: true,
		},
		{
			Email:            "priya@example.com",
			PasswordHash:     &pw,
			FullName:         "Priya Sharma",
			Role:             "user",
			Status:           "active",
			EmailVerified:    true,
			EmailVerifiedAt:  &now,
			Phone:            "+919812345678",
			Age:              24,
			Gender:           "female",
			Occupation:       "Product Designer",
			City:             "Mumbai",
			About:            "Work from home most days. Plants, books, and the occasional house party.",
			Interests:        datatypes.JSONSlice[string]{"reading", "yoga", "painting"},
			Pets:             true,
			ProfileCompleted: true,
		},
		{
			Email:            "rahul@example.com",
			PasswordHash:     &pw,
			FullName:         "Rahul Verma",
			Role:             "user",
			Status:           "active",
			EmailVerified:    true,
			EmailVerifiedAt:  &now,
			Phone:            "+919898989898",
			Age:              29,
			Gender:           "male",
			Occupation:       "Chartered Accountant",
			City:             "Bangalore",
			About:            "Moving for a new job, need a place by next month.",
			Interests:        datatypes.JSONSlice[string]{"football", "movies"},
			Smoking:          false,
			Drinking:         true,
			ProfileCompleted: true,
		},
	}

	for i := range users {
		var existing model.User
		if err := db.Where("email = ?", users[i].Email).First(&existing).Error; err == nil {
			users[i] = existing
			color.Yellow("User %s already exists, skipping...", existing.Email)
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			log.Printf("Error creating user %s: %v", users[i].Email, err)
		} else {
			color.Green("Created user: %s", users[i].Email)
		}
	}

	moveIn := now.AddDate(0, 1, 0)
	posts := []model.Post{
		{
			UserId:      users[0].Id,
			Description: "2BHK in Indiranagar, looking for one flatmate. Fully furnished, 5 min from metro.",
			City:        "Bangalore",
			Area:        "Indiranagar",
			BudgetMin:   15000,
			BudgetMax:   20000,
			Gender:      "male",
			RoomType:    "private",
			MoveInDate:  &moveIn,
			OwnerName:   users[0].FullName,
			OwnerAge:    users[0].Age,
			OwnerGender: users[0].Gender,
			OwnerPhone:  users[0].Phone,
			Interests:   users[0].Interests,
			Vegetarian:  users[0].Vegetarian,
			IsActive:    true,
		},
		{
			UserId:      users[1].Id,
			Description: "Sharing a 3BHK in Bandra with one other person. Pet friendly, no smokers please.",
			City:        "Mumbai",
			Area:        "Bandra West",
			BudgetMin:   25000,
			BudgetMax:   35000,
			Gender:      "any",
			RoomType:    "shared",
			OwnerName:   users[1].FullName,
			OwnerAge:    users[1].Age,
			OwnerGender: users[1].Gender,
			OwnerPhone:  users[1].Phone,
			Interests:   users[1].Interests,
			Pets:        users[1].Pets,
			IsActive:    true,
		},
	}

	for i := range posts {
		if posts[i].UserId == uuid.Nil {
			continue
		}
		var count int64
		db.Model(&model.Post{}).Where("user_id = ? AND city = ?", posts[i].UserId, posts[i].City).Count(&count)
		if count > 0 {
			color.Yellow("Post for %s already exists, skipping...", posts[i].OwnerName)
			continue
		}
		if err := db.Create(&posts[i]).Error; err != nil {
			log.Printf("Error creating post for %s: %v", posts[i].OwnerName, err)
		} else {
			color.Green("Created post: %s / %s", posts[i].City, posts[i].Area)
		}
	}
}
