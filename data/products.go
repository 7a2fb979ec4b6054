package data

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/geargrid/geargrid-api/models"
)

// Products is the seed catalog of auto parts
var Products = []models.Product{
	{
		Name:          "Bosch Ceramic Brake Pads",
		Description:   "High-performance ceramic brake pads designed for superior stopping power.",
		Image:         "https://images.pexels.com/photos/190574/pexels-photo-190574.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Brakes",
		Brand:         "Bosch",
		RetailPrice:   95.99,
		MechanicPrice: 65.99,
		Stock:         120,
		Compatibility: []string{"Toyota", "Honda", "Hyundai", "Ford"},
	},
	{
		Name:          "Brembo Brake Rotors",
		Description:   "Premium ventilated brake rotors engineered for high heat resistance.",
		Image:         "https://images.pexels.com/photos/4483610/pexels-photo-4483610.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Brakes",
		Brand:         "Brembo",
		RetailPrice:   189.99,
		MechanicPrice: 139.99,
		Stock:         60,
		Compatibility: []string{"BMW", "Audi", "Mercedes"},
	},
	{
		Name:          "Castrol 5W-30 Engine Oil (4L)",
		Description:   "Fully synthetic engine oil for maximum engine protection.",
		Image:         "https://images.pexels.com/photos/3806288/pexels-photo-3806288.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Engine",
		Brand:         "Castrol",
		RetailPrice:   49.99,
		MechanicPrice: 34.99,
		Stock:         150,
		Compatibility: []string{"Toyota", "Honda", "Hyundai"},
	},
	{
		Name:          "NGK Iridium Spark Plug Set",
		Description:   "Premium spark plugs for enhanced ignition and fuel efficiency.",
		Image:         "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Engine",
		Brand:         "NGK",
		RetailPrice:   42.99,
		MechanicPrice: 29.99,
		Stock:         110,
		Compatibility: []string{"Honda", "Toyota", "Suzuki"},
	},
	{
		Name:          "Denso Air Filter",
		Description:   "High-efficiency air filter ensuring better airflow and engine life.",
		Image:         "https://images.pexels.com/photos/8986070/pexels-photo-8986070.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Engine",
		Brand:         "Denso",
		RetailPrice:   22.99,
		MechanicPrice: 15.99,
		Stock:         140,
		Compatibility: []string{"Toyota", "Ford", "Nissan"},
	},
	{
		Name:          "Valeo Clutch Kit",
		Description:   "Complete clutch kit for smooth transmission performance.",
		Image:         "https://images.pexels.com/photos/4489734/pexels-photo-4489734.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Transmission",
		Brand:         "Valeo",
		RetailPrice:   299.99,
		MechanicPrice: 219.99,
		Stock:         40,
		Compatibility: []string{"Hyundai", "Ford", "Volkswagen"},
	},
	{
		Name:          "Exide 12V Car Battery",
		Description:   "Maintenance-free battery with strong cold cranking performance.",
		Image:         "https://images.pexels.com/photos/159394/car-battery-vehicle-automobile-159394.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Electrical",
		Brand:         "Exide",
		RetailPrice:   159.99,
		MechanicPrice: 109.99,
		Stock:         70,
		Compatibility: []string{"Toyota", "Honda", "Mahindra"},
	},
	{
		Name:          "KYB Shock Absorbers (Front Pair)",
		Description:   "Gas-charged shock absorbers for improved ride comfort.",
		Image:         "https://images.pexels.com/photos/3806249/pexels-photo-3806249.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Suspension",
		Brand:         "KYB",
		RetailPrice:   249.99,
		MechanicPrice: 179.99,
		Stock:         55,
		Compatibility: []string{"Ford", "Hyundai", "Toyota"},
	},
	{
		Name:          "Valeo Radiator",
		Description:   "High-quality aluminum radiator for effective engine cooling.",
		Image:         "https://images.pexels.com/photos/4483615/pexels-photo-4483615.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Cooling",
		Brand:         "Valeo",
		RetailPrice:   329.99,
		MechanicPrice: 239.99,
		Stock:         30,
		Compatibility: []string{"Honda", "Toyota", "Nissan"},
	},
	{
		Name:          "Philips LED Headlight Bulbs",
		Description:   "Ultra-bright LED headlights for enhanced nighttime visibility.",
		Image:         "https://images.pexels.com/photos/116675/pexels-photo-116675.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Lighting",
		Brand:         "Philips",
		RetailPrice:   89.99,
		MechanicPrice: 64.99,
		Stock:         95,
		Compatibility: []string{"Universal"},
	},
	{
		Name:          "Fram Oil Filter",
		Description:   "High-quality oil filter designed for long-lasting engine protection.",
		Image:         "https://images.pexels.com/photos/3806255/pexels-photo-3806255.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Engine",
		Brand:         "Fram",
		RetailPrice:   14.99,
		MechanicPrice: 9.99,
		Stock:         200,
		Compatibility: []string{"Toyota", "Honda", "Ford"},
	},
	{
		Name:          "Goodyear Wiper Blades",
		Description:   "All-weather durable wiper blades for crystal-clear visibility.",
		Image:         "https://images.pexels.com/photos/190537/pexels-photo-190537.jpeg?auto=compress&cs=tinysrgb&w=600",
		Category:      "Accessories",
		Brand:         "Goodyear",
		RetailPrice:   24.99,
		MechanicPrice: 17.99,
		Stock:         130,
		Compatibility: []string{"Universal"},
	},
}

// SeedProducts wipes the catalog and loads the seed product set
func SeedProducts(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	products := make([]models.Product, len(Products))
	copy(products, Products)
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}

// ClearOrders wipes the order ledger (development utility)
func ClearOrders(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Order{}).Error; err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}
	return nil
}
