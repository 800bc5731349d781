package analytics

import "strings"

// Domain is the business category assigned to a spreadsheet at upload time.
// It selects which section table applies to the analysis payload.
type Domain string

const (
	DomainSales      Domain = "Sales"
	DomainRetail     Domain = "Retail"
	DomainHR         Domain = "HR"
	DomainFinance    Domain = "Finance"
	DomainOperations Domain = "Operations"
)

// ParseDomain maps a raw spreadsheet_type label to a Domain. Unrecognized
// labels yield ok=false; callers treat that as "no analytics available",
// never as an error.
func ParseDomain(raw string) (Domain, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sales":
		return DomainSales, true
	case "retail":
		return DomainRetail, true
	case "hr", "human resources":
		return DomainHR, true
	case "finance", "financial":
		return DomainFinance, true
	case "operations", "ops":
		return DomainOperations, true
	default:
		return Domain(""), false
	}
}

// Known reports whether d has a registered section table.
func (d Domain) Known() bool {
	_, ok := sectionTables[d]
	return ok
}
