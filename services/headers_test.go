package services

import "testing"

func checkHeaderMap(t *testing.T, got HeaderMap, want map[string]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("header map has %d entries, want %d: %v", len(got), len(want), got)
	}
	for name, col := range want {
		if got[name] != col {
			t.Errorf("headers[%q] = %d, want %d", name, got[name], col)
		}
	}
}

func checkHeaderRow(t *testing.T, s *fakeSheet, want []string) {
	t.Helper()
	got := s.headerRow()
	if len(got) != len(want) {
		t.Fatalf("header row = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header cell %d = %q, want %q", i+1, got[i], want[i])
		}
	}
}

func canonicalColumns() map[string]int {
	want := make(map[string]int, len(CanonicalHeaders))
	for i, name := range CanonicalHeaders {
		want[name] = i + 1
	}
	return want
}

func TestParseHeaderPolicy(t *testing.T) {
	got, err := ParseHeaderPolicy("append")
	if err != nil || got != PolicyAppendMissing {
		t.Errorf("ParseHeaderPolicy(append) = %v, %v, want PolicyAppendMissing", got, err)
	}
	got, err = ParseHeaderPolicy("canonical")
	if err != nil || got != PolicyForceCanonicalOrder {
		t.Errorf("ParseHeaderPolicy(canonical) = %v, %v, want PolicyForceCanonicalOrder", got, err)
	}
	if _, err := ParseHeaderPolicy("merge"); err == nil {
		t.Error("ParseHeaderPolicy(merge) expected error")
	}
}

func TestEnsureHeaders_FreshSheet(t *testing.T) {
	for _, policy := range []HeaderPolicy{PolicyAppendMissing, PolicyForceCanonicalOrder} {
		s := newFakeSheet()
		headers := EnsureHeaders(s, policy)
		checkHeaderMap(t, headers, canonicalColumns())
		checkHeaderRow(t, s, CanonicalHeaders)
	}
}

func TestEnsureHeaders_AlreadyCanonical(t *testing.T) {
	s := newFakeSheet(CanonicalHeaders)
	headers := EnsureHeaders(s, PolicyForceCanonicalOrder)
	checkHeaderMap(t, headers, canonicalColumns())
	if s.writes != 0 {
		t.Errorf("EnsureHeaders() wrote %d cells on a matching sheet, want 0", s.writes)
	}
}

func TestEnsureHeaders_LegacyRename_Append(t *testing.T) {
	s := newFakeSheet([]string{"Folder Name", "Bid#"})
	headers := EnsureHeaders(s, PolicyAppendMissing)

	// Renamed in place, then the seven absent names appended in order.
	checkHeaderRow(t, s, CanonicalHeaders)
	checkHeaderMap(t, headers, canonicalColumns())
}

func TestEnsureHeaders_LegacyRename_Canonical(t *testing.T) {
	s := newFakeSheet([]string{"Folder Name", "Bid#"})
	headers := EnsureHeaders(s, PolicyForceCanonicalOrder)
	checkHeaderRow(t, s, CanonicalHeaders)
	checkHeaderMap(t, headers, canonicalColumns())
}

func TestEnsureHeaders_AppendKeepsExistingOrder(t *testing.T) {
	s := newFakeSheet([]string{"Bid Number", "Bid Folder", "Award"})
	headers := EnsureHeaders(s, PolicyAppendMissing)

	checkHeaderRow(t, s, []string{
		"Bid Number", "Bid Folder", "Award",
		"Estimator", "Bid Due Date", "Customer/GC", "Bid Name",
		"Proposal Date", "Proposal Amount", "Bid Status",
	})
	checkHeaderMap(t, headers, map[string]int{
		"Bid Number": 1, "Bid Folder": 2, "Award": 3,
		"Estimator": 4, "Bid Due Date": 5, "Customer/GC": 6, "Bid Name": 7,
		"Proposal Date": 8, "Proposal Amount": 9, "Bid Status": 10,
	})
}

func TestEnsureHeaders_CanonicalRewritesPermutedRow(t *testing.T) {
	s := newFakeSheet([]string{
		"Bid Number", "Bid Folder", "Estimator", "Bid Due Date", "Customer/GC",
		"Bid Name", "Proposal Date", "Proposal Amount", "Bid Status",
	})
	headers := EnsureHeaders(s, PolicyForceCanonicalOrder)
	checkHeaderRow(t, s, CanonicalHeaders)
	checkHeaderMap(t, headers, canonicalColumns())
}

func TestEnsureHeaders_CanonicalKeepsTrailingExtra(t *testing.T) {
	row := append(append([]string{}, CanonicalHeaders...), "Award")
	s := newFakeSheet(row)
	headers := EnsureHeaders(s, PolicyForceCanonicalOrder)

	want := canonicalColumns()
	want["Award"] = 10
	checkHeaderMap(t, headers, want)
	if s.writes != 0 {
		t.Errorf("EnsureHeaders() wrote %d cells, want 0", s.writes)
	}
}

func TestEnsureHeaders_CanonicalDropsClobberedExtra(t *testing.T) {
	// Award sits at column 2, inside the span the canonical re-lay
	// overwrites. It must not survive in the map pointing at a column
	// that now holds Bid Number.
	s := newFakeSheet([]string{
		"Bid Folder", "Award", "Bid Number", "Estimator", "Bid Due Date",
		"Customer/GC", "Bid Name", "Proposal Date", "Proposal Amount",
	})
	headers := EnsureHeaders(s, PolicyForceCanonicalOrder)

	checkHeaderRow(t, s, CanonicalHeaders)
	checkHeaderMap(t, headers, canonicalColumns())
	if _, ok := headers["Award"]; ok {
		t.Errorf("headers[Award] = %d, want absent", headers["Award"])
	}
}

func TestEnsureHeaders_ScanStopsAtLimit(t *testing.T) {
	row := make([]string, 31)
	copy(row, CanonicalHeaders)
	row[30] = "Overflow"
	s := newFakeSheet(row)

	headers := EnsureHeaders(s, PolicyAppendMissing)
	checkHeaderMap(t, headers, canonicalColumns())
	if _, ok := headers["Overflow"]; ok {
		t.Error("headers picked up a column beyond the scan limit")
	}
}

func TestEnsureHeaders_DuplicateFirstOccurrenceWins(t *testing.T) {
	s := newFakeSheet([]string{"Bid Number", "Bid Number"})
	headers := EnsureHeaders(s, PolicyAppendMissing)

	if headers["Bid Number"] != 1 {
		t.Errorf("headers[Bid Number] = %d, want 1", headers["Bid Number"])
	}
	// Missing names append after the duplicate, not over it.
	if headers["Bid Folder"] != 3 {
		t.Errorf("headers[Bid Folder] = %d, want 3", headers["Bid Folder"])
	}
}

func TestScanHeaders_ReadsWithoutWriting(t *testing.T) {
	s := newFakeSheet([]string{"Folder Name", "Bid#", "Award"})
	headers := ScanHeaders(s)

	checkHeaderMap(t, headers, map[string]int{
		"Bid Folder": 1, "Bid Number": 2, "Award": 3,
	})
	if s.writes != 0 {
		t.Errorf("ScanHeaders() wrote %d cells, want 0", s.writes)
	}
	checkHeaderRow(t, s, []string{"Folder Name", "Bid#", "Award"})
}
