// Package seed loads the reference users and products into an empty or
// partially seeded store. Existing rows (same email or SKU) are left untouched.
package seed

import (
	"context"
	"fmt"

	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"
	"ecommerce/internal/services"
	"ecommerce/internal/utils"
)

// DefaultPassword is the plain-text password of every seeded user.
const DefaultPassword = "password123"

type UserCreator interface {
	Create(ctx context.Context, u models.User) (models.User, error)
}

type ProductCreator interface {
	Create(ctx context.Context, p models.Product) (models.Product, error)
}

// Result counts what one run inserted and skipped.
type Result struct {
	UsersCreated    int
	UsersSkipped    int
	ProductsCreated int
	ProductsSkipped int
}

func Users() []models.User {
	return []models.User{
		{Email: "admin@ecommerce.com", FirstName: "Admin", LastName: "User", Role: models.RoleAdmin, IsActive: true, EmailVerified: true},
		{Email: "user@ecommerce.com", FirstName: "Regular", LastName: "User", Role: models.RoleUser, IsActive: true, EmailVerified: true},
		{Email: "test@ecommerce.com", FirstName: "Test", LastName: "User", Role: models.RoleUser, IsActive: true, EmailVerified: false},
	}
}

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }
func dims(l, w, h float64) *models.Dimensions {
	return &models.Dimensions{Length: num(l), Width: num(w), Height: num(h)}
}

func Products() []models.Product {
	return []models.Product{
		{
			Name:        "iPhone 15 Pro",
			Description: str("El último iPhone con características avanzadas de cámara y rendimiento excepcional."),
			Price:       999.99,
			Stock:       50,
			SKU:         "IPHONE-15-PRO-001",
			Category:    "Electrónicos",
			Brand:       str("Apple"),
			Images:      []string{"iphone15pro-1.jpg", "iphone15pro-2.jpg"},
			IsActive:    true,
			IsFeatured:  true,
			Weight:      num(187.0),
			Dimensions:  dims(159.9, 76.7, 8.25),
			Tags:        []string{"smartphone", "apple", "5g", "camera"},
		},
		{
			Name:        "MacBook Air M2",
			Description: str("Laptop ultraligera con chip M2 para máxima eficiencia y rendimiento."),
			Price:       1199.99,
			Stock:       30,
			SKU:         "MACBOOK-AIR-M2-001",
			Category:    "Computadoras",
			Brand:       str("Apple"),
			Images:      []string{"macbook-air-m2-1.jpg", "macbook-air-m2-2.jpg"},
			IsActive:    true,
			IsFeatured:  true,
			Weight:      num(1250.0),
			Dimensions:  dims(304.1, 215.0, 11.3),
			Tags:        []string{"laptop", "apple", "m2", "ultralight"},
		},
		{
			Name:        "Samsung Galaxy S24",
			Description: str("Flagship Android con IA integrada y cámara profesional."),
			Price:       899.99,
			Stock:       40,
			SKU:         "SAMSUNG-S24-001",
			Category:    "Electrónicos",
			Brand:       str("Samsung"),
			Images:      []string{"samsung-s24-1.jpg", "samsung-s24-2.jpg"},
			IsActive:    true,
			Weight:      num(167.0),
			Dimensions:  dims(147.0, 70.6, 7.6),
			Tags:        []string{"smartphone", "android", "samsung", "ai"},
		},
		{
			Name:        "Sony WH-1000XM5",
			Description: str("Auriculares inalámbricos con cancelación de ruido líder en la industria."),
			Price:       349.99,
			Stock:       25,
			SKU:         "SONY-WH1000XM5-001",
			Category:    "Audio",
			Brand:       str("Sony"),
			Images:      []string{"sony-wh1000xm5-1.jpg", "sony-wh1000xm5-2.jpg"},
			IsActive:    true,
			Weight:      num(250.0),
			Dimensions:  dims(167.0, 185.0, 71.0),
			Tags:        []string{"headphones", "wireless", "noise-cancelling", "sony"},
		},
		{
			Name:        "Nike Air Max 270",
			Description: str("Zapatillas deportivas con tecnología Air Max para máxima comodidad."),
			Price:       129.99,
			Stock:       100,
			SKU:         "NIKE-AIRMAX-270-001",
			Category:    "Calzado",
			Brand:       str("Nike"),
			Images:      []string{"nike-airmax-270-1.jpg", "nike-airmax-270-2.jpg"},
			IsActive:    true,
			Weight:      num(320.0),
			Dimensions:  dims(28.0, 10.0, 12.0),
			Tags:        []string{"shoes", "sports", "nike", "airmax"},
		},
	}
}

// Run inserts the fixtures. A unique-key conflict counts as skipped.
func Run(ctx context.Context, users UserCreator, products ProductCreator, hasher services.PasswordHasher) (Result, error) {
	var res Result

	hash, err := hasher.Hash(DefaultPassword)
	if err != nil {
		return res, fmt.Errorf("hash seed password: %w", err)
	}

	for _, u := range Users() {
		u.PasswordHash = hash
		if _, err := users.Create(ctx, u); err != nil {
			if domain.IsConflict(err) {
				res.UsersSkipped++
				continue
			}
			return res, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		res.UsersCreated++
	}

	for _, p := range Products() {
		if _, err := products.Create(ctx, p); err != nil {
			if domain.IsConflict(err) {
				res.ProductsSkipped++
				continue
			}
			return res, fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
		res.ProductsCreated++
	}

	utils.LogEvent(ctx, "seed", "run", "seed completed",
		"users_created", res.UsersCreated, "users_skipped", res.UsersSkipped,
		"products_created", res.ProductsCreated, "products_skipped", res.ProductsSkipped)
	return res, nil
}
