package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"innkeep/internal/models"
)

// CreateImage inserts an image row and fills in the generated id.
func (s *Store) CreateImage(ctx context.Context, img *models.ImageAsset) error {
	if img == nil {
		return fmt.Errorf("image is required")
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO images (path, category, description, created_at)
		VALUES (?, ?, ?, ?)
	`, img.Path, img.Category, img.Description, dbFormatTime(img.CreatedAt))
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = id
	return nil
}

// GetImage returns an image row by id, or nil when absent.
func (s *Store) GetImage(ctx context.Context, id int64) (*models.ImageAsset, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, path, category, description, created_at
		FROM images
		WHERE id = ?
		LIMIT 1
	`, id)
	return scanImage(row)
}

// ListImages returns image rows, optionally filtered by category. Row
// order follows insertion order; no ordering is guaranteed to callers.
func (s *Store) ListImages(ctx context.Context, category string) ([]models.ImageAsset, error) {
	query := "SELECT id, path, category, description, created_at FROM images"
	args := []any{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]models.ImageAsset, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		if img == nil {
			continue
		}
		images = append(images, *img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

// DeleteImage removes an image row by id and reports whether a row was
// deleted.
func (s *Store) DeleteImage(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM images WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(row rowScanner) (*models.ImageAsset, error) {
	var img models.ImageAsset
	var createdAt string
	err := row.Scan(&img.ID, &img.Path, &img.Category, &img.Description, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	img.CreatedAt = dbParseTime(createdAt)
	return &img, nil
}
