package store

import (
	"testing"

	"innkeep/internal/models"
)

func TestImageCRUD(t *testing.T) {
	st, ctx := openTestStore(t)

	img := &models.ImageAsset{Path: "1700000000000-room.png", Category: "rooms", Description: "sea view"}
	if err := st.CreateImage(ctx, img); err != nil {
		t.Fatalf("create image: %v", err)
	}
	if img.ID == 0 {
		t.Fatal("expected generated id")
	}

	loaded, err := st.GetImage(ctx, img.ID)
	if err != nil {
		t.Fatalf("get image: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected image row")
	}
	if loaded.Path != img.Path || loaded.Category != "rooms" || loaded.Description != "sea view" {
		t.Fatalf("unexpected row: %+v", loaded)
	}

	deleted, err := st.DeleteImage(ctx, img.ID)
	if err != nil {
		t.Fatalf("delete image: %v", err)
	}
	if !deleted {
		t.Fatal("expected row to be deleted")
	}

	loaded, err = st.GetImage(ctx, img.ID)
	if err != nil {
		t.Fatalf("get deleted image: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil for deleted row, got %+v", loaded)
	}

	deleted, err = st.DeleteImage(ctx, img.ID)
	if err != nil {
		t.Fatalf("delete missing image: %v", err)
	}
	if deleted {
		t.Fatal("expected no row to be deleted twice")
	}
}

func TestListImagesCategoryFilter(t *testing.T) {
	st, ctx := openTestStore(t)

	for _, img := range []*models.ImageAsset{
		{Path: "1-a.png", Category: "rooms"},
		{Path: "2-b.png", Category: "rooms", Description: "twin"},
		{Path: "3-c.png", Category: "lobby"},
	} {
		if err := st.CreateImage(ctx, img); err != nil {
			t.Fatalf("create %s: %v", img.Path, err)
		}
	}

	all, err := st.ListImages(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}

	rooms, err := st.ListImages(ctx, "rooms")
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms rows, got %d", len(rooms))
	}
	for _, img := range rooms {
		if img.Category != "rooms" {
			t.Fatalf("unexpected category %q in filtered list", img.Category)
		}
	}

	empty, err := st.ListImages(ctx, "spa")
	if err != nil {
		t.Fatalf("list spa: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %d rows", len(empty))
	}
}

func TestCreateImageDuplicatePath(t *testing.T) {
	st, ctx := openTestStore(t)

	if err := st.CreateImage(ctx, &models.ImageAsset{Path: "1-dup.png", Category: "rooms"}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	err := st.CreateImage(ctx, &models.ImageAsset{Path: "1-dup.png", Category: "lobby"})
	if err == nil {
		t.Fatal("expected duplicate path to fail")
	}
	if !IsUniqueConstraint(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}
