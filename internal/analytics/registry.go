package analytics

import "sort"

// topVisible is the collapsed-view cap for ranked lists. The full list is
// always computed; the cap only drives the initial slice.
const topVisible = 5

// SectionDescriptor binds one section key of a domain's analysis payload to
// the transformation that renders it. Descriptors are static and shared
// across renders; display order is the table order.
type SectionDescriptor struct {
	Key      string
	Triggers []string // alternative payload keys that also mark the section present
	Build    func(Record) (RenderModel, bool)
}

func (d SectionDescriptor) present(rec Record) bool {
	if rec.HasContent(d.Key) {
		return true
	}
	for _, key := range d.Triggers {
		if rec.HasContent(key) {
			return true
		}
	}
	return false
}

var sectionTables = map[Domain][]SectionDescriptor{
	DomainSales:      salesSections,
	DomainRetail:     retailSections,
	DomainHR:         hrSections,
	DomainFinance:    financeSections,
	DomainOperations: operationsSections,
}

// SectionsPresent returns the ordered section keys of domain that hold
// displayable data in rec. Unknown domains yield an empty slice.
func SectionsPresent(domain Domain, rec Record) []string {
	table := sectionTables[domain]
	keys := make([]string, 0, len(table))
	for _, desc := range table {
		if desc.present(rec) {
			keys = append(keys, desc.Key)
		}
	}
	return keys
}

// Resolve builds the RenderModel for one (domain, section) pair. The second
// return is false when the section is unregistered or its data is absent;
// the caller omits the section, nothing errors.
func Resolve(domain Domain, sectionKey string, rec Record) (RenderModel, bool) {
	for _, desc := range sectionTables[domain] {
		if desc.Key != sectionKey {
			continue
		}
		if !desc.present(rec) {
			return RenderModel{}, false
		}
		return desc.Build(rec)
	}
	return RenderModel{}, false
}

// rankDesc returns list stable-sorted descending by the number under
// sortKey. Entries without the key rank as 0; ties keep input order so the
// backend's ordering never leaks into perceived tie order.
func rankDesc(list []Record, sortKey string) []Record {
	out := make([]Record, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NumberOr(0, sortKey) > out[j].NumberOr(0, sortKey)
	})
	return out
}

// numbersOf extracts the series of values under key, substituting 0 for
// absent entries so the series keeps positional alignment with list.
func numbersOf(list []Record, key string) []float64 {
	out := make([]float64, len(list))
	for i, rec := range list {
		out[i] = rec.NumberOr(0, key)
	}
	return out
}

func sumOf(list []Record, key string) float64 {
	var total float64
	for _, rec := range list {
		total += rec.NumberOr(0, key)
	}
	return total
}

// listItems maps each record of list to a display Item.
func listItems(list []Record, labelKeys []string, fields func(Record) []Stat) []Item {
	items := make([]Item, 0, len(list))
	for _, rec := range list {
		items = append(items, Item{Label: itemLabel(rec, labelKeys...), Fields: fields(rec)})
	}
	return items
}

// firstList returns the records under the first key that holds a non-empty
// list, for sections fed by alternative payload keys.
func firstList(rec Record, keys ...string) []Record {
	for _, key := range keys {
		if list := rec.Maps(key); len(list) > 0 {
			return list
		}
	}
	return nil
}

// appendNumber appends a formatted stat for the first of keys present in
// rec; absent fields add nothing.
func appendNumber(stats []Stat, rec Record, label string, format func(string, float64) Stat, keys ...string) []Stat {
	for _, key := range keys {
		if n, ok := rec.Number(key); ok {
			return append(stats, format(label, n))
		}
	}
	return stats
}

// sharePercent prefers a backend-computed share field and falls back to
// computing the share of the list total.
func sharePercent(rec Record, shareKey string, value, total float64) float64 {
	if n, ok := rec.Number(shareKey); ok {
		return Round1(n)
	}
	return ShareOfTotal(value, total)
}

// buildDatasetInfo renders the dataset_info block common to every domain.
func buildDatasetInfo(rec Record) (RenderModel, bool) {
	info := rec.Map("dataset_info")
	if len(info) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, info, "Rows", statCount, "total_records", "total_rows")
	stats = appendNumber(stats, info, "Columns", statCount, "total_columns")
	stats = appendNumber(stats, info, "Data Completeness", statPercent, "data_completeness")
	stats = appendNumber(stats, info, "Columns Mapped", statCount, "columns_mapped")
	return RenderModel{Key: "dataset_info", Title: "Dataset Information", Badge: "Dataset", Stats: stats}, true
}
