package analytics

var salesSections = []SectionDescriptor{
	{Key: "sales_performance", Triggers: []string{"total_revenue", "sales_metrics"}, Build: buildSalesPerformance},
	{Key: "top_customers", Build: buildTopCustomers},
	{Key: "top_products", Build: buildTopProducts},
	{Key: "regional_performance", Build: buildRegionalPerformance},
	{Key: "top_sales_reps", Build: buildTopSalesReps},
}

func buildSalesPerformance(rec Record) (RenderModel, bool) {
	metrics := rec.Map("sales_metrics")
	stats := make([]Stat, 0, 4)
	if total, ok := rec.Number("total_revenue"); ok {
		stats = append(stats, statMoney("Total Revenue", total))
	} else {
		stats = appendNumber(stats, metrics, "Total Revenue", statMoney, "total_revenue")
	}
	stats = appendNumber(stats, metrics, "Total Sales", statCount, "total_sales", "total_transactions")
	stats = appendNumber(stats, metrics, "Avg Revenue per Sale", statMoney, "avg_revenue_per_sale", "avg_revenue")
	stats = appendNumber(stats, metrics, "Monthly Growth", statPercent, "monthly_growth_rate")
	if len(stats) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "sales_performance", Title: "Sales Performance", Badge: "Revenue", Stats: stats}, true
}

func buildTopCustomers(rec Record) (RenderModel, bool) {
	customers := rankDesc(rec.Maps("top_customers"), "total_spent")
	if len(customers) == 0 {
		return RenderModel{}, false
	}
	spend := numbersOf(customers, "total_spent")
	items := listItems(customers, []string{"name", "customer"}, func(c Record) []Stat {
		fields := []Stat{statMoney("Total Spent", c.NumberOr(0, "total_spent"))}
		fields = appendNumber(fields, c, "Transactions", statCount, "transactions")
		return fields
	})

	metrics := rec.Map("customer_metrics")
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, metrics, "Customers", statCount, "total_customers")
	stats = appendNumber(stats, metrics, "Avg Customer Value", statMoney, "avg_customer_value")
	stats = appendNumber(stats, metrics, "Top Customer Value", statMoney, "top_customer_value")
	if n, ok := metrics.Number("top_customer_revenue_share"); ok {
		stats = append(stats, statPercent("Top Customer Share", Round1(n)))
	} else {
		stats = append(stats, statPercent("Top 5 Concentration", ConcentrationTopN(spend, topVisible)))
	}

	return RenderModel{
		Key:     "top_customers",
		Title:   "Top Customers",
		Badge:   "Customers",
		Stats:   stats,
		Items:   items,
		Visible: topVisible,
	}, true
}

func buildTopProducts(rec Record) (RenderModel, bool) {
	products := rankDesc(rec.Maps("top_products"), "revenue")
	if len(products) == 0 {
		return RenderModel{}, false
	}
	revenues := numbersOf(products, "revenue")
	items := listItems(products, []string{"product", "product_name", "name"}, func(p Record) []Stat {
		revenue := p.NumberOr(0, "revenue")
		fields := []Stat{statMoney("Revenue", revenue)}
		fields = appendNumber(fields, p, "Units Sold", statCount, "units_sold", "quantity")
		fields = append(fields, statPercent("Of Top Product", ShareOfMax(revenue, revenues)))
		return fields
	})
	return RenderModel{Key: "top_products", Title: "Top Products", Badge: "Products", Items: items, Visible: topVisible}, true
}

func buildRegionalPerformance(rec Record) (RenderModel, bool) {
	regions := rankDesc(rec.Maps("regional_performance"), "revenue")
	if len(regions) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(regions, "revenue")
	items := listItems(regions, []string{"region"}, func(r Record) []Stat {
		revenue := r.NumberOr(0, "revenue")
		fields := []Stat{statMoney("Revenue", revenue)}
		fields = appendNumber(fields, r, "Transactions", statCount, "transactions")
		fields = append(fields, statPercent("Revenue Share", sharePercent(r, "revenue_share_percent", revenue, total)))
		return fields
	})
	return RenderModel{Key: "regional_performance", Title: "Regional Performance", Badge: "Regions", Items: items, Visible: topVisible}, true
}

func buildTopSalesReps(rec Record) (RenderModel, bool) {
	reps := rec.Maps("top_sales_reps")
	if len(reps) == 0 {
		reps = rec.Maps("top_sales_reps", "all_reps")
	}
	reps = rankDesc(reps, "total_revenue")
	if len(reps) == 0 {
		return RenderModel{}, false
	}
	revenues := numbersOf(reps, "total_revenue")
	items := listItems(reps, []string{"sales_rep", "name"}, func(r Record) []Stat {
		revenue := r.NumberOr(0, "total_revenue")
		fields := []Stat{statMoney("Revenue", revenue)}
		fields = appendNumber(fields, r, "Sales", statCount, "total_sales", "transactions")
		fields = append(fields, statPercent("Of Best Performer", ShareOfMax(revenue, revenues)))
		return fields
	})
	return RenderModel{Key: "top_sales_reps", Title: "Sales Rep Performance", Badge: "Team", Items: items, Visible: topVisible}, true
}
