package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"markshare/internal/models"
)

func TestFileStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewFileStore(db)
	owner := testOwner(t, db)

	created, err := s.Create(&models.File{
		Filename:   "notes.md",
		Title:      "Notes",
		Content:    "# Notes",
		HTMLOutput: "<h1>Notes</h1>",
		Kind:       models.KindMarkdown,
		ShareURL:   "/preview/abcd1234",
		IsPublic:   false,
		CreatedBy:  owner.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set")
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected file, got nil")
	}
	if found.Content != "# Notes" || found.HTMLOutput != "<h1>Notes</h1>" {
		t.Errorf("content round-trip: got %q / %q", found.Content, found.HTMLOutput)
	}
	if found.Creator == nil || found.Creator.Username != owner.Username {
		t.Errorf("creator summary: got %+v", found.Creator)
	}
}

func TestFileStoreListFilters(t *testing.T) {
	db := testDB(t)
	s := NewFileStore(db)
	owner := testOwner(t, db)

	mk := func(kind models.ContentKind, public bool) {
		t.Helper()
		if _, err := s.Create(&models.File{
			Filename: "f", Title: "f", Content: "c", HTMLOutput: "h",
			Kind: kind, ShareURL: "/preview/x", IsPublic: public, CreatedBy: owner.ID,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	mk(models.KindMarkdown, true)
	mk(models.KindMarkdown, false)
	mk(models.KindHTML, true)

	all, err := s.List(models.FileFilter{CreatedBy: owner.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all: got %d, want 3", len(all))
	}
	// Newest first.
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Error("list not ordered newest first")
		}
	}
	// Metadata only.
	for _, f := range all {
		if f.Content != "" || f.HTMLOutput != "" {
			t.Error("list leaked content columns")
		}
		if f.Creator == nil || f.Creator.Username != owner.Username {
			t.Errorf("creator summary missing: %+v", f.Creator)
		}
	}

	md, err := s.List(models.FileFilter{CreatedBy: owner.ID, Kind: models.KindMarkdown})
	if err != nil {
		t.Fatalf("List kind: %v", err)
	}
	if len(md) != 2 {
		t.Errorf("markdown: got %d, want 2", len(md))
	}

	pub, err := s.List(models.FileFilter{CreatedBy: owner.ID, OnlyPublic: true})
	if err != nil {
		t.Fatalf("List public: %v", err)
	}
	if len(pub) != 2 {
		t.Errorf("public: got %d, want 2", len(pub))
	}
}

func TestFileStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewFileStore(db)
	owner := testOwner(t, db)

	created, err := s.Create(&models.File{
		Filename: "a.md", Title: "A", Content: "# A", HTMLOutput: "<h1>A</h1>",
		Kind: models.KindMarkdown, ShareURL: "/preview/y", IsPublic: false, CreatedBy: owner.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Title = "B"
	created.Content = "# B"
	created.HTMLOutput = "<h1>B</h1>"
	created.IsPublic = true

	updated, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "B" || updated.Content != "# B" || !updated.IsPublic {
		t.Errorf("update not applied: %+v", updated)
	}
	// Kind and share URL never change.
	if updated.Kind != models.KindMarkdown {
		t.Errorf("kind changed: %q", updated.Kind)
	}
	if updated.ShareURL != "/preview/y" {
		t.Errorf("share url changed: %q", updated.ShareURL)
	}
	if !updated.UpdatedAt.After(created.CreatedAt) {
		t.Error("updated_at not advanced")
	}
}

func TestFileStoreUpdateMissing(t *testing.T) {
	db := testDB(t)
	s := NewFileStore(db)

	_, err := s.Update(&models.File{ID: uuid.New(), Filename: "x", Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewFileStore(db)
	owner := testOwner(t, db)

	created, err := s.Create(&models.File{
		Filename: "d.md", Title: "D", Content: "x", HTMLOutput: "y",
		Kind: models.KindHTML, ShareURL: "/preview/z", CreatedBy: owner.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if found != nil {
		t.Error("expected nil after delete")
	}

	// Deleting again reports not found.
	if err := s.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}
