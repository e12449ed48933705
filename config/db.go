package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moonlight-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "moonlight_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts the defaults a fresh install needs. Idempotent.
func SeedDatabase() {
	// ---------------- Staff ----------------
	var staffCount int64
	DB.Model(&models.Staff{}).Count(&staffCount)
	if staffCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default staff password: %v", err)
		} else {
			manager := models.Staff{
				FullName: "Front Desk Manager",
				Email:    "manager@moonlight.local",
				Position: "Manager",
				Password: string(hash),
				Active:   true,
			}
			if err := DB.Create(&manager).Error; err != nil {
				log.Printf("warning: failed to create default staff: %v", err)
			} else {
				log.Println("Default staff member seeded")
			}
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Single", Description: "Single room, one queen bed", BaseRate: decimal.NewFromInt(90), MaxGuests: 1},
			{TypeName: "Double", Description: "Double room, two queen beds", BaseRate: decimal.NewFromInt(120), MaxGuests: 2},
			{TypeName: "Suite", Description: "Suite with separate living area", BaseRate: decimal.NewFromInt(210), MaxGuests: 3},
			{TypeName: "Family", Description: "Family room sleeping up to five", BaseRate: decimal.NewFromInt(160), MaxGuests: 5},
		}
		DB.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: models.RoomTypeSingle, Floor: "1", PricePerNight: decimal.NewFromInt(90), Capacity: 1},
			{RoomNumber: "102", Type: models.RoomTypeDouble, Floor: "1", PricePerNight: decimal.NewFromInt(120), Capacity: 2},
			{RoomNumber: "201", Type: models.RoomTypeDouble, Floor: "2", PricePerNight: decimal.NewFromInt(125), Capacity: 2},
			{RoomNumber: "202", Type: models.RoomTypeFamily, Floor: "2", PricePerNight: decimal.NewFromInt(160), Capacity: 5},
			{RoomNumber: "301", Type: models.RoomTypeSuite, Floor: "3", PricePerNight: decimal.NewFromInt(210), Capacity: 3},
		}
		for i := range rooms {
			rooms[i].Status = models.RoomStatusAvailable
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Hotel settings ----------------
	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:    "Moonlight Resort & Suites",
			Address: "1 Moonlight Bay Drive",
			Email:   "frontdesk@moonlight.local",
			Website: "https://moonlight.local",
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		} else {
			log.Println("Hotel settings seeded")
		}
	}

	// ---------------- Roles ----------------
	desiredRoles := []models.Role{
		{Name: "owner", Description: "System owner with full access"},
		{Name: "Manager", Description: "Manager with elevated access"},
		{Name: "Receptionist", Description: "Front desk operations"},
		{Name: "Housekeeper", Description: "Housekeeping access"},
	}

	allPerms := []string{
		"bookingManagement.view",
		"bookingManagement.create",
		"bookingManagement.edit",
		"bookingManagement.delete",
		"roomManagement.view",
		"roomManagement.create",
		"roomManagement.edit",
		"roomManagement.delete",
		"roomManagement.editStatus",
		"invoiceManagement.view",
		"invoiceManagement.create",
		"invoiceManagement.edit",
		"housekeeping.view",
		"housekeeping.edit",
		"maintenance.view",
		"maintenance.edit",
		"reports.view",
		"staffManagement.view",
		"staffManagement.create",
		"staffManagement.edit",
		"staffManagement.delete",
		"reviewModeration.view",
		"reviewModeration.edit",
	}

	rolesByKey := map[string]models.Role{}
	for i := range desiredRoles {
		role := desiredRoles[i]
		key := strings.ToLower(role.Name)

		var existing models.Role
		err := DB.Where("LOWER(name) = ?", key).First(&existing).Error
		if err == nil && existing.ID != 0 {
			rolesByKey[key] = existing
			continue
		}
		if err := DB.Create(&role).Error; err != nil {
			log.Printf("warning: failed to create role %s: %v", role.Name, err)
			continue
		}
		rolesByKey[key] = role
	}

	ownerRole, ok := rolesByKey["owner"]
	if ok && ownerRole.ID != 0 {
		var permCount int64
		DB.Model(&models.RolePermission{}).Where("role_id = ?", ownerRole.ID).Count(&permCount)
		if permCount == 0 {
			perms := make([]models.RolePermission, 0, len(allPerms))
			for _, p := range allPerms {
				perms = append(perms, models.RolePermission{RoleID: ownerRole.ID, Permission: p})
			}
			if err := DB.Create(&perms).Error; err != nil {
				log.Printf("warning: failed to create owner permissions: %v", err)
			}
		}

		var memberCount int64
		DB.Model(&models.RoleMember{}).Where("role_id = ?", ownerRole.ID).Count(&memberCount)
		if memberCount == 0 {
			var staff []models.Staff
			DB.Find(&staff)
			members := make([]models.RoleMember, 0, len(staff))
			for _, s := range staff {
				members = append(members, models.RoleMember{RoleID: ownerRole.ID, StaffID: s.ID})
			}
			if len(members) > 0 {
				if err := DB.Create(&members).Error; err != nil {
					log.Printf("warning: failed to assign staff to owner role: %v", err)
				}
			}
		}
	}

	log.Println("Roles ensured")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Staff{},
		&models.HotelSetting{},
		&models.Role{},
		&models.RolePermission{},
		&models.RoleMember{},
		&models.RoomType{},
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.HousekeepingTask{},
		&models.MaintenanceRequest{},
		&models.Review{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
