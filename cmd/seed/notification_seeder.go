package main

import (
	"log"

	"roombuddy-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "CONNECTION_REQUEST_SENT",
			DisplayName: "New Connection Request",
			Template:    "{sender_name} wants to connect about your roommate post",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "CONNECTION_REQUEST_ACCEPTED",
			DisplayName: "Request Accepted",
			Template:    "{receiver_name} accepted your connection request",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "PAYMENT_SUCCEEDED",
			DisplayName: "Premium Activated",
			Template:    "Your {plan} premium plan is now active",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST", // Special type for all users
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		// PostgreSQL specific ON CONFLICT to avoid duplicates
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("✅ Notification types seeded successfully.")
}
