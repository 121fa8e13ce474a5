package migration

import (
	"Relief-Ops-Console/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\";")

	if err := db.AutoMigrate(&entities.AppRole{}); err != nil {
		log.Fatalf("Error migrating role database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AppUser{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Disaster{}); err != nil {
		log.Fatalf("Error migrating disaster database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DisasterLocation{}); err != nil {
		log.Fatalf("Error migrating disaster location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.StorageLocation{}); err != nil {
		log.Fatalf("Error migrating storage location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Resource{}); err != nil {
		log.Fatalf("Error migrating resource database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ResourceAlert{}); err != nil {
		log.Fatalf("Error migrating resource alert database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DemandRequest{}); err != nil {
		log.Fatalf("Error migrating demand request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Allocation{}); err != nil {
		log.Fatalf("Error migrating allocation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AllocationLog{}); err != nil {
		log.Fatalf("Error migrating allocation log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Volunteer{}); err != nil {
		log.Fatalf("Error migrating volunteer database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.VolunteerAssignment{}); err != nil {
		log.Fatalf("Error migrating volunteer assignment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transport{}); err != nil {
		log.Fatalf("Error migrating transport database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Dispatch{}); err != nil {
		log.Fatalf("Error migrating dispatch database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
