package services

import "fmt"

// CanonicalHeaders is the authoritative column layout of the bid list
// worksheet, in order.
var CanonicalHeaders = []string{
	"Bid Folder",
	"Bid Number",
	"Estimator",
	"Bid Due Date",
	"Customer/GC",
	"Bid Name",
	"Proposal Date",
	"Proposal Amount",
	"Bid Status",
}

// legacyHeaders maps column names from older workbook layouts to their
// canonical replacements.
var legacyHeaders = map[string]string{
	"Folder Name": "Bid Folder",
	"Bid#":        "Bid Number",
	"GC/Owner":    "Customer/GC",
	"Description": "Bid Name",
	"Due Date":    "Bid Due Date",
	"Status":      "Bid Status",
}

// headerScanLimit bounds how many columns of row 1 are inspected.
const headerScanLimit = 30

// HeaderMap maps a header name to its 1-based column index. It is valid
// only for the worksheet it was derived from, for the duration of one
// operation.
type HeaderMap map[string]int

// HeaderPolicy selects how an existing header row is reconciled against
// CanonicalHeaders.
type HeaderPolicy int

const (
	// PolicyAppendMissing keeps the existing column order and appends every
	// canonical name not already present after the last used header.
	PolicyAppendMissing HeaderPolicy = iota
	// PolicyForceCanonicalOrder rewrites the leading columns with
	// CanonicalHeaders whenever they do not already match it exactly, then
	// maps the canonical names positionally.
	PolicyForceCanonicalOrder
)

// ParseHeaderPolicy maps a policy name from the configuration to its
// HeaderPolicy value.
func ParseHeaderPolicy(name string) (HeaderPolicy, error) {
	switch name {
	case "append":
		return PolicyAppendMissing, nil
	case "canonical":
		return PolicyForceCanonicalOrder, nil
	}
	return 0, fmt.Errorf("unknown header policy %q (want 'append' or 'canonical')", name)
}

// EnsureHeaders reconciles row 1 of the sheet with CanonicalHeaders under
// the given policy and returns the resulting header map.
//
// Legacy column names are renamed to their canonical form in place first.
// A sheet with no header text at all gets the full canonical layout
// written from column 1 under either policy. On duplicate names the first
// occurrence wins.
func EnsureHeaders(sheet Sheet, policy HeaderPolicy) HeaderMap {
	headers := make(HeaderMap)
	lastUsed := 0

	// 1. Scan bounded, renaming legacy headers in place.
	for col := 1; col <= headerScanLimit; col++ {
		text := sheet.CellText(1, col)
		if text == "" {
			continue
		}
		if canonical, ok := legacyHeaders[text]; ok {
			sheet.SetCell(1, col, canonical)
			text = canonical
		}
		if _, seen := headers[text]; !seen {
			headers[text] = col
		}
		lastUsed = col
	}

	// 2. Fresh sheet: write the canonical layout starting at column 1.
	if len(headers) == 0 {
		for i, name := range CanonicalHeaders {
			sheet.SetCell(1, i+1, name)
			headers[name] = i + 1
		}
		return headers
	}

	// 3. Reconcile per policy.
	if policy == PolicyAppendMissing {
		next := lastUsed + 1
		for _, name := range CanonicalHeaders {
			if _, ok := headers[name]; ok {
				continue
			}
			sheet.SetCell(1, next, name)
			headers[name] = next
			next++
		}
		return headers
	}

	matches := true
	for i, name := range CanonicalHeaders {
		if headers[name] != i+1 {
			matches = false
			break
		}
	}
	if !matches {
		for i, name := range CanonicalHeaders {
			sheet.SetCell(1, i+1, name)
		}
	}

	// Map canonical names positionally. Extra columns beyond the canonical
	// width keep their scanned position; extras whose column was taken by
	// the re-lay drop out of the map.
	remapped := make(HeaderMap, len(headers))
	for name, col := range headers {
		if col > len(CanonicalHeaders) {
			remapped[name] = col
		}
	}
	for i, name := range CanonicalHeaders {
		remapped[name] = i + 1
	}
	return remapped
}

// ScanHeaders reads row 1 without modifying it and returns the header map
// the sheet currently implies. Legacy names map to their canonical form in
// the returned map only; the cells keep their text. Read-only consumers
// such as the report builder use this instead of EnsureHeaders.
func ScanHeaders(sheet Sheet) HeaderMap {
	headers := make(HeaderMap)
	for col := 1; col <= headerScanLimit; col++ {
		text := sheet.CellText(1, col)
		if text == "" {
			continue
		}
		if canonical, ok := legacyHeaders[text]; ok {
			text = canonical
		}
		if _, seen := headers[text]; !seen {
			headers[text] = col
		}
	}
	return headers
}
