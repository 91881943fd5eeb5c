package store

import (
	"context"
	"time"

	"innkeep/internal/models"
)

// ImageStore abstracts image metadata row storage.
type ImageStore interface {
	CreateImage(ctx context.Context, img *models.ImageAsset) error
	GetImage(ctx context.Context, id int64) (*models.ImageAsset, error)
	ListImages(ctx context.Context, category string) ([]models.ImageAsset, error)
	DeleteImage(ctx context.Context, id int64) (bool, error)
}

// CredentialStore abstracts user credential row storage.
type CredentialStore interface {
	CreateUser(ctx context.Context, username, passwordHash string, now time.Time) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// BookingStore abstracts reservation row storage.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

var (
	_ ImageStore      = (*Store)(nil)
	_ CredentialStore = (*Store)(nil)
	_ BookingStore    = (*Store)(nil)
)
