package migrations

import (
	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// seedAccount is one of the role accounts created on first run. Default
// passwords are placeholders for a fresh install and are bcrypt-hashed
// before they ever reach the database.
type seedAccount struct {
	Username    string
	Password    string
	DisplayName string
	Role        models.UserRole
}

var seedAccounts = []seedAccount{
	{Username: "admin", Password: "admin123", DisplayName: "Administrator", Role: models.RoleAdmin},
	{Username: "production", Password: "prod123", DisplayName: "Production Floor", Role: models.RoleProduction},
	{Username: "packing", Password: "pack123", DisplayName: "Packing Floor", Role: models.RolePacking},
	{Username: "store", Password: "store123", DisplayName: "Store Keeper", Role: models.RoleStore},
	{Username: "ecommerce", Password: "ecom123", DisplayName: "Ecommerce Desk", Role: models.RoleEcommerce},
}

// Run migrates the schema and seeds the five role accounts. Re-running is
// idempotent: accounts whose usernames already exist are left untouched.
func Run(db *gorm.DB, bcryptCost int, log *zap.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Order{},
		&models.StoreTransaction{},
		&models.EcommerceLog{},
	); err != nil {
		return err
	}

	return seedUsers(db, bcryptCost, log)
}

func seedUsers(db *gorm.DB, bcryptCost int, log *zap.Logger) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo, bcryptCost)

	for _, account := range seedAccounts {
		count, err := userRepo.CountByUsername(account.Username)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		user := &models.User{
			Username:    account.Username,
			DisplayName: account.DisplayName,
			Role:        string(account.Role),
		}
		if err := userService.CreateUser(user, account.Password); err != nil {
			return err
		}
		log.Info("seeded account", zap.String("username", account.Username), zap.String("role", user.Role))
	}
	return nil
}
