package analytics

var retailSections = []SectionDescriptor{
	{Key: "dataset_info", Build: buildDatasetInfo},
	{Key: "product_performance", Triggers: []string{"top_performing_products", "top_selling_products"}, Build: buildProductPerformance},
	{Key: "category_performance", Build: buildCategoryPerformance},
	{Key: "brand_performance", Build: buildBrandPerformance},
	{Key: "inventory_metrics", Triggers: []string{"inventory_alerts"}, Build: buildInventoryMetrics},
	{Key: "pricing_analysis", Triggers: []string{"pricing_metrics", "margin_analysis", "discount_analysis"}, Build: buildPricingAnalysis},
	{Key: "store_performance", Build: buildStorePerformance},
	{Key: "seasonal_trends", Triggers: []string{"daily_patterns"}, Build: buildSeasonalTrends},
}

func buildProductPerformance(rec Record) (RenderModel, bool) {
	products := firstList(rec, "top_performing_products", "top_selling_products")
	products = rankDesc(products, "revenue")
	if len(products) == 0 {
		return RenderModel{}, false
	}
	revenues := numbersOf(products, "revenue")
	items := listItems(products, []string{"product", "product_name", "product_id"}, func(p Record) []Stat {
		revenue := p.NumberOr(0, "revenue")
		fields := []Stat{statMoney("Revenue", revenue)}
		fields = appendNumber(fields, p, "Units Sold", statCount, "units_sold", "quantity_sold")
		fields = append(fields, statPercent("Of Top Product", ShareOfMax(revenue, revenues)))
		return fields
	})
	return RenderModel{Key: "product_performance", Title: "Product Performance", Badge: "Products", Items: items, Visible: topVisible}, true
}

func buildCategoryPerformance(rec Record) (RenderModel, bool) {
	categories := rankDesc(rec.Maps("category_performance"), "total_revenue")
	if len(categories) == 0 {
		return RenderModel{}, false
	}
	totalRevenue := sumOf(categories, "total_revenue")
	totalUnits := sumOf(categories, "units_sold")
	items := listItems(categories, []string{"category"}, func(c Record) []Stat {
		revenue := c.NumberOr(0, "total_revenue")
		fields := []Stat{
			statMoney("Revenue", revenue),
			statPercent("Revenue Share", sharePercent(c, "revenue_share_percent", revenue, totalRevenue)),
		}
		if units, ok := c.Number("units_sold"); ok {
			fields = append(fields, statPercent("Units Share", sharePercent(c, "units_share_percent", units, totalUnits)))
		}
		return fields
	})
	stats := []Stat{statCount("Categories", float64(len(categories)))}
	return RenderModel{Key: "category_performance", Title: "Category Performance", Badge: "Categories", Stats: stats, Items: items}, true
}

func buildBrandPerformance(rec Record) (RenderModel, bool) {
	brands := rankDesc(rec.Maps("brand_performance"), "revenue")
	if len(brands) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(brands, "revenue")
	items := listItems(brands, []string{"brand"}, func(b Record) []Stat {
		revenue := b.NumberOr(0, "revenue")
		fields := []Stat{statMoney("Revenue", revenue)}
		fields = appendNumber(fields, b, "Units Sold", statCount, "units_sold")
		fields = append(fields, statPercent("Revenue Share", sharePercent(b, "revenue_share_percent", revenue, total)))
		return fields
	})
	return RenderModel{Key: "brand_performance", Title: "Brand Performance", Badge: "Brands", Items: items, Visible: topVisible}, true
}

func buildInventoryMetrics(rec Record) (RenderModel, bool) {
	inventory := rec.Map("inventory_metrics")
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, inventory, "Inventory Value", statMoney, "total_inventory_value")
	stats = appendNumber(stats, inventory, "Avg per Product", statCount, "avg_inventory_per_product")
	stats = appendNumber(stats, inventory, "Low Stock Items", statCount, "low_stock_items")
	stats = appendNumber(stats, inventory, "Out of Stock", statCount, "out_of_stock")

	alerts := firstList(rec, "inventory_alerts", "low_stock_products", "overstock_products")
	items := listItems(alerts, []string{"product", "product_name", "product_id"}, func(a Record) []Stat {
		fields := make([]Stat, 0, 2)
		fields = appendNumber(fields, a, "Stock Level", statCount, "stock_level", "inventory_level")
		fields = appendNumber(fields, a, "Units Sold", statCount, "units_sold")
		return fields
	})
	if len(stats) == 0 && len(items) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "inventory_metrics", Title: "Inventory Metrics", Badge: "Inventory", Stats: stats, Items: items, Visible: topVisible}, true
}

func buildPricingAnalysis(rec Record) (RenderModel, bool) {
	pricing := rec.Map("pricing_metrics")
	margins := rec.Map("margin_analysis")
	discounts := rec.Map("discount_analysis")
	stats := make([]Stat, 0, 7)
	stats = appendNumber(stats, pricing, "Average Price", statMoney, "avg_price")
	stats = appendNumber(stats, pricing, "Median Price", statMoney, "median_price")
	stats = appendNumber(stats, pricing.Map("price_range"), "Lowest Price", statMoney, "min")
	stats = appendNumber(stats, pricing.Map("price_range"), "Highest Price", statMoney, "max")
	stats = appendNumber(stats, margins, "Avg Margin", statPercent, "avg_margin_percent")
	stats = appendNumber(stats, discounts, "Avg Discount", statPercent, "avg_discount_percent")
	stats = appendNumber(stats, discounts, "Discount Penetration", statPercent, "discount_penetration")
	if len(stats) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "pricing_analysis", Title: "Pricing Analysis", Badge: "Pricing", Stats: stats}, true
}

func buildStorePerformance(rec Record) (RenderModel, bool) {
	stores := rankDesc(rec.Maps("store_performance"), "revenue")
	if len(stores) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(stores, "revenue")
	items := listItems(stores, []string{"store"}, func(s Record) []Stat {
		revenue := s.NumberOr(0, "revenue")
		fields := []Stat{statMoney("Revenue", revenue)}
		fields = appendNumber(fields, s, "Transactions", statCount, "transactions")
		fields = append(fields, statPercent("Revenue Share", sharePercent(s, "revenue_share_percent", revenue, total)))
		return fields
	})
	return RenderModel{Key: "store_performance", Title: "Store Performance", Badge: "Stores", Items: items, Visible: topVisible}, true
}

func buildSeasonalTrends(rec Record) (RenderModel, bool) {
	trends := rec.Maps("seasonal_trends")
	labelKeys := []string{"season"}
	if len(trends) == 0 {
		trends = rec.Maps("daily_patterns")
		labelKeys = []string{"day"}
	}
	if len(trends) == 0 {
		return RenderModel{}, false
	}
	// Time series keep input order; no ranking applies.
	revenues := numbersOf(trends, "revenue")
	items := listItems(trends, labelKeys, func(t Record) []Stat {
		revenue := t.NumberOr(0, "revenue")
		fields := []Stat{statMoney("Revenue", revenue)}
		fields = appendNumber(fields, t, "Transactions", statCount, "transactions")
		fields = append(fields, statPercent("Of Peak", ShareOfMax(revenue, revenues)))
		return fields
	})
	return RenderModel{Key: "seasonal_trends", Title: "Seasonal & Time Trends", Badge: "Trends", Items: items}, true
}
