package analytics

import "math"

var financeSections = []SectionDescriptor{
	{Key: "dataset_info", Build: buildDatasetInfo},
	{Key: "transaction_summary", Build: buildTransactionSummary},
	{Key: "revenue_overview", Build: buildRevenueOverview},
	{Key: "expense_overview", Build: buildExpenseOverview},
	{Key: "profitability_overview", Build: buildProfitability},
	{Key: "cashflow_overview", Build: buildCashFlow},
	{Key: "budget_performance", Build: buildBudgetPerformance},
	{Key: "account_performance", Build: buildAccountPerformance},
	{Key: "department_financials", Triggers: []string{"segment_financials"}, Build: buildDepartmentFinancials},
	{Key: "vendor_metrics", Build: buildVendorMetrics},
	{Key: "customer_metrics", Build: buildCustomerMetrics},
	{Key: "financial_trends", Triggers: []string{"monthly_financial_trends", "quarterly_trends", "yearly_trends", "day_of_week_patterns"}, Build: buildFinancialTrends},
	{Key: "transactions_by_category", Triggers: []string{"transactions_by_department", "transactions_by_account", "transactions_by_vendor", "transactions_by_customer"}, Build: buildTransactionsBy},
}

func buildTransactionSummary(rec Record) (RenderModel, bool) {
	summary := rec.Map("transaction_summary")
	if len(summary) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, summary, "Transactions", statCount, "total_transactions")
	stats = appendNumber(stats, summary, "Total Amount", statMoney, "total_amount")
	stats = appendNumber(stats, summary, "Average Transaction", statMoney, "average_transaction", "average_amount")
	stats = appendNumber(stats, summary, "Largest Transaction", statMoney, "largest_transaction", "max_transaction")
	stats = appendNumber(stats, summary, "Smallest Transaction", statMoney, "smallest_transaction", "min_transaction")
	return RenderModel{Key: "transaction_summary", Title: "Transaction Summary", Badge: "Transactions", Stats: stats}, true
}

func buildRevenueOverview(rec Record) (RenderModel, bool) {
	revenue := rec.Map("revenue_overview")
	if len(revenue) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, revenue, "Total Revenue", statMoney, "total_revenue")
	stats = appendNumber(stats, revenue, "Average Revenue", statMoney, "average_revenue")
	stats = appendNumber(stats, revenue, "Median Revenue", statMoney, "median_revenue")
	stats = appendNumber(stats, revenue, "Revenue Transactions", statCount, "revenue_transactions")
	return RenderModel{Key: "revenue_overview", Title: "Revenue Overview", Badge: "Revenue", Stats: stats}, true
}

func buildExpenseOverview(rec Record) (RenderModel, bool) {
	expenses := rec.Map("expense_overview")
	if len(expenses) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, expenses, "Total Expenses", statMoney, "total_expenses", "total_expense")
	stats = appendNumber(stats, expenses, "Average Expense", statMoney, "average_expense")
	stats = appendNumber(stats, expenses, "Largest Expense", statMoney, "largest_expense")
	stats = appendNumber(stats, expenses, "Expense Transactions", statCount, "expense_transactions")
	return RenderModel{Key: "expense_overview", Title: "Expense Analysis", Badge: "Expenses", Stats: stats}, true
}

func buildProfitability(rec Record) (RenderModel, bool) {
	profit := rec.Map("profitability_overview")
	if len(profit) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, profit, "Total Profit", statMoney, "total_profit")
	stats = appendNumber(stats, profit, "Avg Profit Margin", statPercent, "average_profit_margin")
	stats = appendNumber(stats, profit, "Profitable Transactions", statCount, "profitable_transactions", "profit_transactions")
	stats = appendNumber(stats, profit, "Loss Transactions", statCount, "loss_transactions")
	stats = appendNumber(stats, profit, "Break-Even Transactions", statCount, "break_even_transactions")
	return RenderModel{Key: "profitability_overview", Title: "Profitability", Badge: "Profit", Stats: stats}, true
}

func buildCashFlow(rec Record) (RenderModel, bool) {
	cashflow := rec.Map("cashflow_overview")
	if len(cashflow) == 0 {
		return RenderModel{}, false
	}
	inflows, hasIn := cashflow.Number("total_inflows")
	outflows, hasOut := cashflow.Number("total_outflows")
	net, hasNet := cashflow.Number("net_cashflow")
	if !hasNet && (hasIn || hasOut) {
		net = inflows - outflows
		hasNet = true
	}

	stats := make([]Stat, 0, 5)
	if hasIn {
		stats = append(stats, statMoney("Total Inflows", inflows))
	}
	if hasOut {
		stats = append(stats, statMoney("Total Outflows", outflows))
	}
	if hasNet {
		direction := "Positive"
		if net < 0 {
			direction = "Negative"
		}
		stats = append(stats,
			statMoney("Net Cash Flow", math.Abs(net)),
			statText("Direction", direction))
	}
	stats = appendNumber(stats, cashflow, "Inflow Transactions", statCount, "inflow_transactions")
	stats = appendNumber(stats, cashflow, "Outflow Transactions", statCount, "outflow_transactions")

	// Monthly trend keeps chronological input order.
	items := listItems(rec.Maps("monthly_cashflow_trends"), []string{"month"}, func(t Record) []Stat {
		return []Stat{statMoney("Net Cash Flow", t.NumberOr(0, "net_cashflow"))}
	})
	return RenderModel{Key: "cashflow_overview", Title: "Cash Flow Analysis", Badge: "Cash Flow", Stats: stats, Items: items}, true
}

func buildBudgetPerformance(rec Record) (RenderModel, bool) {
	budget := rec.Map("budget_performance")
	if len(budget) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 6)
	stats = appendNumber(stats, budget, "Total Budget", statMoney, "total_budget")
	stats = appendNumber(stats, budget, "Total Actual", statMoney, "total_actual")
	stats = appendNumber(stats, budget, "Total Variance", statMoney, "total_variance")
	stats = appendNumber(stats, budget, "Budget Utilization", statPercent, "budget_utilization_rate", "utilization_rate")
	stats = appendNumber(stats, budget, "Over Budget", statCount, "over_budget_items")
	stats = appendNumber(stats, budget, "Under Budget", statCount, "under_budget_items")

	items := listItems(budget.Maps("categories"), []string{"category"}, func(c Record) []Stat {
		fields := make([]Stat, 0, 3)
		fields = appendNumber(fields, c, "Budgeted", statMoney, "budgeted", "budget")
		fields = appendNumber(fields, c, "Actual", statMoney, "actual")
		fields = appendNumber(fields, c, "Variance", statMoney, "variance")
		return fields
	})
	return RenderModel{Key: "budget_performance", Title: "Budget Performance", Badge: "Budget", Stats: stats, Items: items, Visible: topVisible}, true
}

func buildAccountPerformance(rec Record) (RenderModel, bool) {
	accounts := rankDesc(rec.Maps("account_performance"), "total_amount")
	if len(accounts) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(accounts, "total_amount")
	items := listItems(accounts, []string{"account"}, func(a Record) []Stat {
		amount := a.NumberOr(0, "total_amount")
		fields := []Stat{statMoney("Amount", amount)}
		fields = appendNumber(fields, a, "Transactions", statCount, "transaction_count")
		fields = append(fields, statPercent("Share", sharePercent(a, "percentage_of_total", amount, total)))
		return fields
	})
	return RenderModel{Key: "account_performance", Title: "Account Performance", Badge: "Accounts", Items: items, Visible: topVisible}, true
}

func buildDepartmentFinancials(rec Record) (RenderModel, bool) {
	depts := firstList(rec, "department_financials", "segment_financials")
	depts = rankDesc(depts, "total_amount")
	if len(depts) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(depts, "total_amount")
	items := listItems(depts, []string{"department", "object"}, func(d Record) []Stat {
		amount := d.NumberOr(0, "total_amount")
		fields := []Stat{statMoney("Amount", amount)}
		fields = appendNumber(fields, d, "Transactions", statCount, "transaction_count")
		fields = append(fields, statPercent("Share", sharePercent(d, "percentage_of_total", amount, total)))
		return fields
	})
	return RenderModel{Key: "department_financials", Title: "Department Performance", Badge: "Departments", Items: items, Visible: topVisible}, true
}

func buildVendorMetrics(rec Record) (RenderModel, bool) {
	vendors := rec.Map("vendor_metrics")
	if len(vendors) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 3)
	stats = appendNumber(stats, vendors, "Avg Transaction Value", statMoney, "average_vendor_transaction_value")
	stats = appendNumber(stats, vendors, "Vendor Diversity", statCount, "vendor_diversity_index")
	if name := vendors.String("most_active"); name != "" {
		stats = append(stats, statText("Most Active Vendor", name))
	}
	return RenderModel{Key: "vendor_metrics", Title: "Vendor Analysis", Badge: "Vendors", Stats: stats}, true
}

func buildCustomerMetrics(rec Record) (RenderModel, bool) {
	customers := rec.Map("customer_metrics")
	if len(customers) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 3)
	stats = appendNumber(stats, customers, "Avg Transaction Value", statMoney, "average_customer_transaction_value")
	stats = appendNumber(stats, customers, "Customer Diversity", statCount, "customer_diversity_index")
	if name := customers.String("most_active"); name != "" {
		stats = append(stats, statText("Most Active Customer", name))
	}
	return RenderModel{Key: "customer_metrics", Title: "Customer Analysis", Badge: "Customers", Stats: stats}, true
}

func buildFinancialTrends(rec Record) (RenderModel, bool) {
	trends := firstList(rec, "monthly_financial_trends", "quarterly_trends", "yearly_trends", "day_of_week_patterns")
	if len(trends) == 0 {
		return RenderModel{}, false
	}
	items := listItems(trends, []string{"month", "quarter", "year", "day_of_week"}, func(t Record) []Stat {
		fields := make([]Stat, 0, 3)
		fields = appendNumber(fields, t, "Revenue", statMoney, "revenue", "total_amount")
		fields = appendNumber(fields, t, "Expenses", statMoney, "expense", "total_expense")
		fields = appendNumber(fields, t, "Profit", statMoney, "profit")
		return fields
	})

	stats := make([]Stat, 0, 1)
	if g, ok := rec.Number("financial_trends", "growth_rate_percent"); ok {
		stats = append(stats, statPercent("Growth Rate", Round1(g)))
	} else if len(trends) >= 2 {
		first := trends[0].NumberOr(0, "revenue")
		last := trends[len(trends)-1].NumberOr(0, "revenue")
		stats = append(stats, statGrowth("Growth Rate", GrowthRate(last, first)))
	}
	return RenderModel{Key: "financial_trends", Title: "Financial Trends", Badge: "Trends", Stats: stats, Items: items}, true
}

func buildTransactionsBy(rec Record) (RenderModel, bool) {
	groups := firstList(rec,
		"transactions_by_category",
		"transactions_by_department",
		"transactions_by_account",
		"transactions_by_vendor",
		"transactions_by_customer")
	groups = rankDesc(groups, "total_amount")
	if len(groups) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(groups, "total_amount")
	items := listItems(groups, []string{"category", "department", "account", "vendor", "customer"}, func(g Record) []Stat {
		amount := g.NumberOr(0, "total_amount")
		fields := []Stat{statMoney("Amount", amount)}
		fields = appendNumber(fields, g, "Transactions", statCount, "transaction_count")
		fields = append(fields, statPercent("Share", sharePercent(g, "percentage_of_total", amount, total)))
		return fields
	})
	return RenderModel{Key: "transactions_by_category", Title: "Transactions by Group", Badge: "Breakdown", Items: items, Visible: topVisible}, true
}
