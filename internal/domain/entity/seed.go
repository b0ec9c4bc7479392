package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedProducts colección por defecto cuando el slot admin_products está vacío o corrupto.
func SeedProducts() []Product {
	now := time.Now().UTC()
	return []Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro Max",
			Category:    "Elektronik",
			Price:       decimal.NewFromInt(1199),
			Stock:       45,
			Status:      ProductStatusActive,
			Description: "Flagship dari Apple dengan bodi titanium.",
			Image:       "/iphone.jpg",
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Wireless Headphone",
			Category:    "Elektronik",
			Price:       decimal.NewFromInt(299),
			Stock:       120,
			Status:      ProductStatusActive,
			Description: "Kualitas suara premium dengan teknologi ANC canggih.",
			Image:       "/headphones.jpg",
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Kaos Katun Organik",
			Category:    "Pakaian",
			Price:       decimal.NewFromInt(25),
			Stock:       8,
			Status:      ProductStatusDraft,
			Description: "Kaos lembut dan nyaman yang terbuat dari 100% katun organik.",
			Image:       "/shirt.jpg",
			CreatedAt:   now,
		},
	}
}

// SeedUsers roster por defecto cuando el slot admin_users está vacío o corrupto.
func SeedUsers() []User {
	now := time.Now().UTC()
	return []User{
		{ID: "1", Name: "Aji Prasetia", Email: "prasetia.a@gmail.com", Role: RoleAdmin, Status: UserStatusActive, Avatar: "/foto.jpg", CreatedAt: now},
		{ID: "2", Name: "Arif Alfarizi", Email: "alfarizi.a@gmail.com", Role: RoleManager, Status: UserStatusActive, Avatar: "/foto.jpg", CreatedAt: now},
		{ID: "3", Name: "Budi Santoso", Email: "budi.s@gmail.com", Role: RoleStaff, Status: UserStatusInactive, Avatar: "/foto.jpg", CreatedAt: now},
	}
}
