package catalog

import "testing"

func TestLookups(t *testing.T) {
	service, ok := ServiceByID("kids")
	if !ok || service.Price != 999 {
		t.Fatalf("unexpected service: %+v ok=%v", service, ok)
	}
	pkg, ok := PackageByID("premium")
	if !ok || pkg.Price != 1299 || !pkg.Popular {
		t.Fatalf("unexpected package: %+v ok=%v", pkg, ok)
	}
	addOn, ok := AddOnByID("rush")
	if !ok || addOn.Price != 299 {
		t.Fatalf("unexpected add-on: %+v ok=%v", addOn, ok)
	}
	if _, ok := PackageByID("platinum"); ok {
		t.Fatal("expected unknown package id to miss")
	}
	slot, ok := TimeSlotByLabel("11:00 AM")
	if !ok || slot.Available {
		t.Fatalf("expected 11:00 AM to exist and be unavailable, got %+v ok=%v", slot, ok)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := Services()
	first[0].Name = "mutated"
	second := Services()
	if second[0].Name == "mutated" {
		t.Fatal("expected Services to return a copy")
	}
}

func TestPackageFeaturesDoNotAliasTable(t *testing.T) {
	first := Packages()
	first[0].Features[0] = "mutated"
	second := Packages()
	if second[0].Features[0] == "mutated" {
		t.Fatal("expected Packages to copy the feature lists")
	}

	pkg, ok := PackageByID("premium")
	if !ok {
		t.Fatal("expected premium package")
	}
	pkg.Features[0] = "mutated"
	again, _ := PackageByID("premium")
	if again.Features[0] == "mutated" {
		t.Fatal("expected PackageByID to copy the feature list")
	}
}
