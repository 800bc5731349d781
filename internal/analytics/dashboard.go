package analytics

// BuildDashboard is the single entry point of the analytics core: it maps a
// domain-tagged analysis record to the ordered list of display-ready section
// models for the requested mode. It is pure and deterministic (same inputs,
// structurally identical output) and never panics on malformed records; a
// record with nothing to show yields an empty, non-nil slice.
func BuildDashboard(domain Domain, rec Record, mode Mode) []RenderModel {
	if rec == nil {
		rec = Record{}
	}
	if mode == ModeAIGenerated {
		return insightModels(rec)
	}

	table := sectionTables[domain]
	out := make([]RenderModel, 0, len(table))
	for _, desc := range table {
		if !desc.present(rec) {
			continue
		}
		model, ok := desc.Build(rec)
		if !ok {
			continue
		}
		out = append(out, model)
	}
	return out
}
