package analytics

// insightCategories defines the AI-generated presentation: each category is
// a plain list of natural-language strings wrapped in a uniform card. Order
// is fixed; absent categories are omitted.
var insightCategories = []struct {
	key   string
	title string
}{
	{key: "trends", title: "Trends"},
	{key: "anomalies", title: "Anomalies"},
	{key: "predictions", title: "Predictions"},
}

func insightModels(rec Record) []RenderModel {
	out := make([]RenderModel, 0, len(insightCategories))
	for _, category := range insightCategories {
		lines := rec.Strings(category.key)
		if len(lines) == 0 {
			continue
		}
		out = append(out, RenderModel{
			Key:      "insights_" + category.key,
			Title:    category.title,
			Badge:    "AI Insights",
			Insights: lines,
		})
	}
	return out
}
