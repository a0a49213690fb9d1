package catalog

import "testing"

func TestResolveSatellite(t *testing.T) {
	cases := []struct {
		name   string
		wantID int
		wantOK bool
	}{
		{"ISS", 25544, true},
		{"iss", 25544, true},
		{"Space Station", 25544, true},
		{"HUBBLE", 20580, true},
		{"NOAA 19", 33591, true},
		{"definitely not a satellite", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ResolveSatellite(tc.name)
			if ok != tc.wantOK || id != tc.wantID {
				t.Errorf("ResolveSatellite(%q) = %d, %v, want %d, %v", tc.name, id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

func TestCategoryName(t *testing.T) {
	name, ok := CategoryName(0)
	if !ok || name != "All" {
		t.Errorf("CategoryName(0) = %q, %v, want %q, true", name, ok, "All")
	}
	name, ok = CategoryName(52)
	if !ok || name != "Starlink" {
		t.Errorf("CategoryName(52) = %q, %v, want %q, true", name, ok, "Starlink")
	}
	if _, ok := CategoryName(9999); ok {
		t.Error("CategoryName(9999) = ok, want not found")
	}
}

func TestCategoriesSorted(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("Categories() returned no entries")
	}
	if cats[0].ID != 0 || cats[0].Name != "All" {
		t.Errorf("first category = %+v, want {0 All}", cats[0])
	}
	for i := 1; i < len(cats); i++ {
		if cats[i].ID <= cats[i-1].ID {
			t.Fatalf("categories not sorted at index %d: %d after %d", i, cats[i].ID, cats[i-1].ID)
		}
	}
}
