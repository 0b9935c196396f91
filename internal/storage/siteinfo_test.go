package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/dmapsite/internal/db"
)

func TestGetCompanyBeforeFirstWrite(t *testing.T) {
	store, cleanup := setupStorageTest(t)
	defer cleanup()

	if _, err := store.GetCompany(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCompanyUpsertsSingleRow(t *testing.T) {
	store, cleanup := setupStorageTest(t)
	defer cleanup()

	first, err := store.UpdateCompany(CompanyInput{
		Name:    "DMAP Retrofit Construction Company",
		Tagline: "Experts in Retrofitting",
		Mission: "Reinforcing infrastructure.",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	second, err := store.UpdateCompany(CompanyInput{
		Name:    "DMAP Retrofit Construction Company",
		Tagline: "Experts in Retrofitting, Reconstruction & Civil Works",
		Mission: "Reinforcing infrastructure.",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert created a second row: %d vs %d", first.ID, second.ID)
	}
	if second.Tagline != "Experts in Retrofitting, Reconstruction & Civil Works" {
		t.Fatalf("tagline not updated: %q", second.Tagline)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updatedAt did not advance: %v -> %v", first.UpdatedAt, second.UpdatedAt)
	}

	var count int64
	if err := store.db.Model(&db.Company{}).Count(&count).Error; err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one company row, got %d", count)
	}
}

func TestUpdateAboutPreservesDomainsOrder(t *testing.T) {
	store, cleanup := setupStorageTest(t)
	defer cleanup()

	domains := db.StringList{
		"Public and government buildings",
		"Residential and commercial complexes",
		"Infrastructure and utility structures",
	}
	row, err := store.UpdateAbout(AboutInput{Description: "A civil engineering firm.", Domains: domains})
	if err != nil {
		t.Fatalf("upsert about: %v", err)
	}

	got, err := store.GetAbout()
	if err != nil {
		t.Fatalf("get about: %v", err)
	}
	if got.ID != row.ID {
		t.Fatalf("expected row %d, got %d", row.ID, got.ID)
	}
	if len(got.Domains) != len(domains) {
		t.Fatalf("expected %d domains, got %d", len(domains), len(got.Domains))
	}
	for i := range domains {
		if got.Domains[i] != domains[i] {
			t.Fatalf("domain %d out of order: %q", i, got.Domains[i])
		}
	}
}

func TestUpdateContactTwiceKeepsOneRow(t *testing.T) {
	store, cleanup := setupStorageTest(t)
	defer cleanup()

	if _, err := store.UpdateContact(ContactInput{
		Phone: "+91-9987082530", Email: "old@example.com", Location: "Mumbai",
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	updated, err := store.UpdateContact(ContactInput{
		Phone: "+91-9987082530", Email: "new@example.com", Location: "Mumbai",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("email not updated: %q", updated.Email)
	}

	var count int64
	if err := store.db.Model(&db.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("count contacts: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one contact row, got %d", count)
	}
}
