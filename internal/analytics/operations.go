package analytics

var operationsSections = []SectionDescriptor{
	{Key: "dataset_info", Build: buildDatasetInfo},
	{Key: "order_overview", Build: buildOrderOverview},
	{Key: "inventory_management", Triggers: []string{"inventory_overview", "inventory_distribution", "product_inventory_alerts"}, Build: buildInventoryManagement},
	{Key: "supply_chain", Triggers: []string{"supplier_performance", "lead_time_metrics"}, Build: buildSupplyChain},
	{Key: "quality_metrics", Build: buildQualityMetrics},
	{Key: "production_efficiency", Build: buildProductionEfficiency},
	{Key: "delivery_performance", Build: buildDeliveryPerformance},
	{Key: "regional_operations", Build: buildRegionalOperations},
	{Key: "operational_costs", Triggers: []string{"cost_overview", "cost_by_product", "cost_by_supplier"}, Build: buildOperationalCosts},
	{Key: "operational_trends", Triggers: []string{"monthly_operational_trends", "weekly_patterns", "seasonal_trends", "growth_metrics"}, Build: buildOperationalTrends},
}

func buildOrderOverview(rec Record) (RenderModel, bool) {
	orders := rec.Map("order_overview")
	if len(orders) == 0 {
		return RenderModel{}, false
	}
	total := orders.NumberOr(0, "total_orders")
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, orders, "Total Orders", statCount, "total_orders")
	stats = appendNumber(stats, orders, "Completed", statCount, "completed_orders")
	stats = appendNumber(stats, orders, "Pending", statCount, "pending_orders")
	if rate, ok := orders.Number("fulfillment_rate_percent"); ok {
		stats = append(stats, statPercent("Fulfillment Rate", Round1(rate)))
	} else if completed, ok := orders.Number("completed_orders"); ok {
		stats = append(stats, statPercent("Fulfillment Rate", ShareOfTotal(completed, total)))
	}
	stats = appendNumber(stats, orders, "Avg Items per Order", statCount, "avg_items_per_order", "avg_quantity_per_order")
	return RenderModel{Key: "order_overview", Title: "Order Overview", Badge: "Orders", Stats: stats}, true
}

func buildInventoryManagement(rec Record) (RenderModel, bool) {
	overview := rec.Map("inventory_overview")
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, overview, "Inventory Units", statCount, "total_inventory_units", "total_inventory")
	stats = appendNumber(stats, overview, "Avg Inventory", statCount, "avg_inventory", "average_inventory_per_item")
	stats = appendNumber(stats, overview, "Below Reorder Point", statCount, "items_below_reorder_point")
	stats = appendNumber(stats, overview, "Zero Inventory Items", statCount, "zero_inventory_items")

	distribution := firstList(rec, "inventory_distribution", "product_inventory_alerts", "lowest_stock_products")
	items := listItems(distribution, []string{"product", "product_name", "warehouse", "category"}, func(d Record) []Stat {
		fields := make([]Stat, 0, 2)
		fields = appendNumber(fields, d, "Inventory", statCount, "inventory_level", "level")
		fields = appendNumber(fields, d, "Reorder Point", statCount, "reorder_point")
		return fields
	})
	if len(stats) == 0 && len(items) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "inventory_management", Title: "Inventory Management", Badge: "Inventory", Stats: stats, Items: items, Visible: topVisible}, true
}

func buildSupplyChain(rec Record) (RenderModel, bool) {
	leadTimes := rec.Map("lead_time_metrics")
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, leadTimes, "Avg Lead Time (days)", statCount, "avg_lead_time")
	stats = appendNumber(stats, leadTimes, "Min Lead Time", statCount, "min_lead_time")
	stats = appendNumber(stats, leadTimes, "Max Lead Time", statCount, "max_lead_time")
	stats = appendNumber(stats, leadTimes, "Consistency Score", statCount, "lead_time_consistency_score", "lead_time_consistency")

	suppliers := rankDesc(rec.Maps("supplier_performance"), "order_count")
	items := listItems(suppliers, []string{"supplier"}, func(s Record) []Stat {
		fields := make([]Stat, 0, 3)
		fields = appendNumber(fields, s, "Orders", statCount, "order_count")
		fields = appendNumber(fields, s, "Avg Lead Time", statCount, "avg_lead_time")
		fields = appendNumber(fields, s, "On-Time Rate", statPercent, "on_time_delivery_rate_percent")
		return fields
	})
	if len(stats) == 0 && len(items) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "supply_chain", Title: "Supply Chain Performance", Badge: "Supply Chain", Stats: stats, Items: items, Visible: topVisible}, true
}

func buildQualityMetrics(rec Record) (RenderModel, bool) {
	quality := rec.Map("quality_metrics")
	if len(quality) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, quality, "Avg Quality Score", statCount, "avg_quality_score")
	stats = appendNumber(stats, quality, "Avg Defect Rate", statPercent, "avg_defect_rate")
	stats = appendNumber(stats, quality, "Total Defects", statCount, "total_defects")
	stats = appendNumber(stats, quality, "High Quality Items", statCount, "high_quality_items")
	stats = appendNumber(stats, quality, "Zero Defect Items", statCount, "zero_defect_items")
	return RenderModel{Key: "quality_metrics", Title: "Quality Metrics", Badge: "Quality", Stats: stats}, true
}

func buildProductionEfficiency(rec Record) (RenderModel, bool) {
	production := rec.Map("production_efficiency")
	if len(production) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, production, "Avg Productivity", statCount, "avg_productivity")
	stats = appendNumber(stats, production, "Peak Productivity", statCount, "max_productivity")
	stats = appendNumber(stats, production, "Avg Utilization", statPercent, "avg_utilization_percent")
	stats = appendNumber(stats, production, "Total Downtime", statCount, "total_downtime")
	stats = appendNumber(stats, production, "Zero Downtime Periods", statCount, "zero_downtime_periods")
	return RenderModel{Key: "production_efficiency", Title: "Production Efficiency", Badge: "Production", Stats: stats}, true
}

func buildDeliveryPerformance(rec Record) (RenderModel, bool) {
	delivery := rec.Map("delivery_performance")
	if len(delivery) == 0 {
		return RenderModel{}, false
	}
	total := delivery.NumberOr(0, "total_deliveries")
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, delivery, "Total Deliveries", statCount, "total_deliveries")
	stats = appendNumber(stats, delivery, "On-Time Deliveries", statCount, "on_time_deliveries")
	if rate, ok := delivery.Number("on_time_delivery_rate_percent"); ok {
		stats = append(stats, statPercent("On-Time Rate", Round1(rate)))
	} else if onTime, ok := delivery.Number("on_time_deliveries"); ok {
		stats = append(stats, statPercent("On-Time Rate", ShareOfTotal(onTime, total)))
	}
	stats = appendNumber(stats, delivery, "Avg Delivery (days)", statCount, "avg_delivery_time_days")
	stats = appendNumber(stats, delivery, "Fastest (days)", statCount, "fastest_delivery_days")
	return RenderModel{Key: "delivery_performance", Title: "Delivery Performance", Badge: "Delivery", Stats: stats}, true
}

func buildRegionalOperations(rec Record) (RenderModel, bool) {
	regions := rankDesc(rec.Maps("regional_operations"), "total_volume")
	if len(regions) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(regions, "total_volume")
	items := listItems(regions, []string{"region", "warehouse"}, func(r Record) []Stat {
		volume := r.NumberOr(0, "total_volume")
		fields := []Stat{statCount("Volume", volume)}
		fields = appendNumber(fields, r, "Orders", statCount, "order_count")
		fields = append(fields, statPercent("Share", sharePercent(r, "percentage_of_total", volume, total)))
		return fields
	})
	return RenderModel{Key: "regional_operations", Title: "Regional Operations", Badge: "Regions", Items: items, Visible: topVisible}, true
}

func buildOperationalCosts(rec Record) (RenderModel, bool) {
	costs := rec.Map("cost_overview")
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, costs, "Total Costs", statMoney, "total_operational_costs", "total_cost")
	stats = appendNumber(stats, costs, "Average Cost", statMoney, "avg_cost", "average_cost")
	stats = appendNumber(stats, costs, "Highest Cost", statMoney, "highest_cost")
	stats = appendNumber(stats, costs, "Lowest Cost", statMoney, "lowest_cost")

	breakdown := firstList(rec, "cost_by_product", "cost_by_supplier")
	breakdown = rankDesc(breakdown, "total_cost")
	total := sumOf(breakdown, "total_cost")
	items := listItems(breakdown, []string{"product", "product_name", "supplier"}, func(c Record) []Stat {
		cost := c.NumberOr(0, "total_cost")
		fields := []Stat{statMoney("Cost", cost)}
		fields = appendNumber(fields, c, "Transactions", statCount, "transaction_count")
		fields = append(fields, statPercent("Share", sharePercent(c, "percentage_of_total", cost, total)))
		return fields
	})
	if len(stats) == 0 && len(items) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "operational_costs", Title: "Operational Costs", Badge: "Costs", Stats: stats, Items: items, Visible: topVisible}, true
}

func buildOperationalTrends(rec Record) (RenderModel, bool) {
	trends := firstList(rec, "monthly_operational_trends", "weekly_patterns", "seasonal_trends")
	items := listItems(trends, []string{"month", "week", "season"}, func(t Record) []Stat {
		fields := make([]Stat, 0, 2)
		fields = appendNumber(fields, t, "Quantity", statCount, "total_quantity", "quantity")
		fields = appendNumber(fields, t, "Orders", statCount, "order_count", "unique_orders")
		return fields
	})

	growth := rec.Map("growth_metrics")
	stats := make([]Stat, 0, 2)
	if g, ok := growth.Number("monthly_quantity_growth_percent"); ok {
		stats = append(stats, statPercent("Monthly Quantity Growth", Round1(g)))
	} else if len(trends) >= 2 {
		first := trends[0].NumberOr(0, "total_quantity")
		last := trends[len(trends)-1].NumberOr(0, "total_quantity")
		stats = append(stats, statGrowth("Quantity Growth", GrowthRate(last, first)))
	}
	if direction := growth.String("trend_direction"); direction != "" {
		stats = append(stats, statText("Trend", direction))
	}
	if len(stats) == 0 && len(items) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "operational_trends", Title: "Operational Trends", Badge: "Trends", Stats: stats, Items: items}, true
}
