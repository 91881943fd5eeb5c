package server

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"innkeep/internal/blobstore"
	"innkeep/internal/models"
	"innkeep/internal/store"
)

// MediaService keeps image rows and their blobs consistent: a surviving
// row always names a stored file, except for the documented partial-
// delete gap.
type MediaService struct {
	images store.ImageStore
	blobs  blobstore.BlobStore
}

// UploadInput describes one image upload.
type UploadInput struct {
	Content     []byte
	Filename    string
	Category    string
	Description string
}

// NewMediaService constructs a MediaService.
func NewMediaService(images store.ImageStore, blobs blobstore.BlobStore) *MediaService {
	return &MediaService{images: images, blobs: blobs}
}

// Upload validates input, writes the blob, then inserts the row. A row
// insert failing after the blob write leaves the blob orphaned; there is
// no compensating delete.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*models.ImageAsset, error) {
	if len(in.Content) == 0 {
		return nil, validationError("No file uploaded")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, validationError("Category is required")
	}

	storedName, err := s.blobs.Put(ctx, in.Filename, bytes.NewReader(in.Content))
	if err != nil {
		return nil, storageError("Error storing file", err)
	}

	img := &models.ImageAsset{
		Path:        storedName,
		Category:    category,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.images.CreateImage(ctx, img); err != nil {
		return nil, storageError("Error saving image record", err)
	}
	return img, nil
}

// List returns image rows, optionally filtered by category.
func (s *MediaService) List(ctx context.Context, category string) ([]models.ImageAsset, error) {
	images, err := s.images.ListImages(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, storageError("Error fetching images", err)
	}
	if images == nil {
		images = []models.ImageAsset{}
	}
	return images, nil
}

// Delete removes the blob first, then the row. An already-missing blob
// self-heals and proceeds to row removal; any other blob failure aborts
// with the row intact. A row delete failing after blob removal leaves a
// dangling row; that partial state is surfaced, not rolled back.
func (s *MediaService) Delete(ctx context.Context, id int64) error {
	img, err := s.images.GetImage(ctx, id)
	if err != nil {
		return storageError("Error fetching image", err)
	}
	if img == nil {
		return notFound("Image not found")
	}

	if err := s.blobs.Delete(ctx, img.Path); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return storageError("Error deleting file", err)
	}

	deleted, err := s.images.DeleteImage(ctx, id)
	if err != nil {
		return storageError("Error deleting record", err)
	}
	if !deleted {
		return notFound("Image not found")
	}
	return nil
}
