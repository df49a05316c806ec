package services

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name passes through", "Acme Builders", "Acme Builders"},
		{"illegal characters become spaces", `Acme/Builders: "North" Yard?`, "Acme Builders North Yard"},
		{"windows path separators", `S:\Bids\26101`, "S Bids 26101"},
		{"whitespace runs collapse", "Big   Job\tPhase  2", "Big Job Phase 2"},
		{"surrounding whitespace trimmed", "  Warehouse  ", "Warehouse"},
		{"only illegal characters", `***`, ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDueDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single digit month and day", "1-5", "01-05"},
		{"already padded", "12-05", "12-05"},
		{"padded month only", "12-5", "12-05"},
		{"padded day only", "2-29", "02-29"},
		{"top of both ranges", "12-31", "12-31"},
		{"surrounding whitespace", " 3-9 ", "03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDueDate(tt.input)
			if err != nil {
				t.Fatalf("NormalizeDueDate(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDueDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDueDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"month above twelve", "13-01"},
		{"day above thirty one", "12-32"},
		{"zero month", "0-5"},
		{"zero day", "12-0"},
		{"slash separator", "12/05"},
		{"spelled out", "December 5"},
		{"trailing year", "12-5-2026"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDueDate(tt.input)
			if err == nil {
				t.Fatalf("NormalizeDueDate(%q) = %q, want error", tt.input, got)
			}
			var dueErr *InvalidDueDateError
			if !errors.As(err, &dueErr) {
				t.Fatalf("NormalizeDueDate(%q) error = %v, want *InvalidDueDateError", tt.input, err)
			}
			if dueErr.Input != tt.input {
				t.Errorf("InvalidDueDateError.Input = %q, want %q", dueErr.Input, tt.input)
			}
		})
	}
}

func TestBuildFolderName(t *testing.T) {
	tests := []struct {
		name     string
		number   int
		initials string
		dueDate  string
		customer string
		bidName  string
		want     string
	}{
		{
			name:     "clean fields",
			number:   26101,
			initials: "MD",
			dueDate:  "12-05",
			customer: "Acme Builders",
			bidName:  "Warehouse Expansion",
			want:     "26101 - MD - 12-05 - Acme Builders - Warehouse Expansion",
		},
		{
			name:     "illegal characters sanitized",
			number:   26102,
			initials: "TR",
			dueDate:  "01-15",
			customer: "Smith/Jones",
			bidName:  `Office "B" Fit-Out`,
			want:     "26102 - TR - 01-15 - Smith Jones - Office B Fit-Out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFolderName(tt.number, tt.initials, tt.dueDate, tt.customer, tt.bidName)
			if got != tt.want {
				t.Errorf("BuildFolderName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFolderName(t *testing.T) {
	folder := "26101 - MD - 12-05 - Acme Builders - Warehouse Expansion"
	info := ParseFolderName(folder)
	if info == nil {
		t.Fatalf("ParseFolderName(%q) = nil, want fields", folder)
	}
	if info.BidNumber != "26101" {
		t.Errorf("BidNumber = %q, want %q", info.BidNumber, "26101")
	}
	if info.Initials != "MD" {
		t.Errorf("Initials = %q, want %q", info.Initials, "MD")
	}
	if info.DueDate != "12-05" {
		t.Errorf("DueDate = %q, want %q", info.DueDate, "12-05")
	}
	if info.Customer != "Acme Builders" {
		t.Errorf("Customer = %q, want %q", info.Customer, "Acme Builders")
	}
	if info.BidName != "Warehouse Expansion" {
		t.Errorf("BidName = %q, want %q", info.BidName, "Warehouse Expansion")
	}
	if info.Folder != folder {
		t.Errorf("Folder = %q, want %q", info.Folder, folder)
	}
}

func TestParseFolderName_SeparatorInBidName(t *testing.T) {
	info := ParseFolderName("26105 - JT - 01-20 - Acme - Warehouse - Phase 2")
	if info == nil {
		t.Fatal("ParseFolderName() = nil, want fields")
	}
	if info.BidName != "Warehouse - Phase 2" {
		t.Errorf("BidName = %q, want %q", info.BidName, "Warehouse - Phase 2")
	}
}

func TestParseFolderName_NotABidFolder(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain folder", "Archive"},
		{"four segments", "26101 - MD - 12-05 - Acme"},
		{"hyphens without spaces", "26101-MD-12-05-Acme-Job"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if info := ParseFolderName(tt.input); info != nil {
				t.Errorf("ParseFolderName(%q) = %+v, want nil", tt.input, info)
			}
		})
	}
}

func TestBuildFolderName_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		number   int
		initials string
		dueDate  string
		customer string
		bidName  string
	}{
		{"simple", 26101, "MD", "12-05", "Acme Builders", "Warehouse Expansion"},
		{"bid name with separator", 26102, "TR", "01-20", "Beta GC", "Clinic - Phase 2"},
		{"low number", 7, "AB", "03-01", "City of Dayton", "Pump Station"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := BuildFolderName(tt.number, tt.initials, tt.dueDate, tt.customer, tt.bidName)
			info := ParseFolderName(folder)
			if info == nil {
				t.Fatalf("ParseFolderName(%q) = nil, want fields", folder)
			}
			if info.BidNumber != strconv.Itoa(tt.number) {
				t.Errorf("BidNumber = %q, want %q", info.BidNumber, strconv.Itoa(tt.number))
			}
			if info.Initials != tt.initials {
				t.Errorf("Initials = %q, want %q", info.Initials, tt.initials)
			}
			if info.DueDate != tt.dueDate {
				t.Errorf("DueDate = %q, want %q", info.DueDate, tt.dueDate)
			}
			if info.Customer != tt.customer {
				t.Errorf("Customer = %q, want %q", info.Customer, tt.customer)
			}
			if info.BidName != tt.bidName {
				t.Errorf("BidName = %q, want %q", info.BidName, tt.bidName)
			}
			if info.Folder != folder {
				t.Errorf("Folder = %q, want %q", info.Folder, folder)
			}
		})
	}
}

func TestNextBidNumber(t *testing.T) {
	tests := []struct {
		name    string
		folders []string
		want    int
	}{
		{
			name:    "increments the highest",
			folders: []string{"26101 - MD - 12-05 - Acme - Job", "26102 - TR - 01-15 - Beta - Job", "Old Archive"},
			want:    26103,
		},
		{
			name:    "ignores numbers that are not leading",
			folders: []string{"Archive 99", "26050 - MD - 12-05 - Acme - Job"},
			want:    26051,
		},
		{
			name:    "tolerates leading whitespace",
			folders: []string{" 7 - MD - 12-05 - Acme - Job"},
			want:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextBidNumber(tt.folders)
			if err != nil {
				t.Fatalf("NextBidNumber() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NextBidNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextBidNumber_NoNumberedFolders(t *testing.T) {
	tests := []struct {
		name    string
		folders []string
	}{
		{"no folders", nil},
		{"unnumbered folders", []string{"Archive", "Templates"}},
		{"zero prefix does not count", []string{"0 - MD - 12-05 - Acme - Job"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextBidNumber(tt.folders)
			if !errors.Is(err, ErrNoNumberedFolders) {
				t.Errorf("NextBidNumber() error = %v, want ErrNoNumberedFolders", err)
			}
		})
	}
}

func TestListBidFolders(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"26101 - MD - 12-05 - Acme - Job", "Archive"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := ListBidFolders(root)
	if err != nil {
		t.Fatalf("ListBidFolders() error = %v", err)
	}
	want := []string{"26101 - MD - 12-05 - Acme - Job", "Archive"}
	if len(got) != len(want) {
		t.Fatalf("ListBidFolders() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListBidFolders()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListBidFolders_MissingRoot(t *testing.T) {
	_, err := ListBidFolders(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("ListBidFolders() expected error for missing root")
	}
}
