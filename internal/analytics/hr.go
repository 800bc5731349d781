package analytics

var hrSections = []SectionDescriptor{
	{Key: "dataset_info", Build: buildDatasetInfo},
	{Key: "workforce_overview", Build: buildWorkforceOverview},
	{Key: "compensation_overview", Build: buildCompensationOverview},
	{Key: "department_metrics", Build: buildDepartmentMetrics},
	{Key: "performance_overview", Build: buildPerformanceOverview},
	{Key: "turnover_retention", Triggers: []string{"tenure_metrics", "turnover_metrics"}, Build: buildTurnoverRetention},
	{Key: "training_overview", Build: buildTrainingOverview},
	{Key: "demographics", Build: buildDemographics},
	{Key: "attendance_metrics", Build: buildAttendanceMetrics},
}

func buildWorkforceOverview(rec Record) (RenderModel, bool) {
	workforce := rec.Map("workforce_overview")
	if len(workforce) == 0 {
		return RenderModel{}, false
	}
	total := workforce.NumberOr(0, "total_employees")
	stats := make([]Stat, 0, 3)
	stats = appendNumber(stats, workforce, "Total Employees", statCount, "total_employees")
	stats = appendNumber(stats, workforce, "Active Employees", statCount, "active_employees")
	if active, ok := workforce.Number("active_employees"); ok {
		stats = append(stats, statPercent("Activity Rate", ShareOfTotal(active, total)))
	}

	var items []Item
	if depts := rec.Maps("department_distribution"); len(depts) > 0 {
		items = listItems(depts, []string{"department"}, func(d Record) []Stat {
			count := d.NumberOr(0, "employee_count")
			return []Stat{
				statCount("Employees", count),
				statPercent("Share", sharePercent(d, "percentage", count, total)),
			}
		})
	}

	return RenderModel{
		Key:     "workforce_overview",
		Title:   "Workforce Overview",
		Badge:   "Overview",
		Stats:   stats,
		Items:   items,
		Visible: topVisible,
	}, true
}

func buildCompensationOverview(rec Record) (RenderModel, bool) {
	comp := rec.Map("compensation_overview")
	if len(comp) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, comp, "Total Payroll", statMoney, "total_payroll")
	stats = appendNumber(stats, comp, "Average Salary", statMoney, "avg_salary")
	stats = appendNumber(stats, comp, "Median Salary", statMoney, "median_salary")
	stats = appendNumber(stats, comp.Map("salary_range"), "Lowest Salary", statMoney, "min")
	stats = appendNumber(stats, comp.Map("salary_range"), "Highest Salary", statMoney, "max")
	return RenderModel{Key: "compensation_overview", Title: "Compensation Overview", Badge: "Compensation", Stats: stats}, true
}

func buildDepartmentMetrics(rec Record) (RenderModel, bool) {
	depts := rankDesc(rec.Maps("department_metrics"), "employee_count")
	if len(depts) == 0 {
		return RenderModel{}, false
	}
	total := sumOf(depts, "employee_count")
	items := listItems(depts, []string{"department"}, func(d Record) []Stat {
		count := d.NumberOr(0, "employee_count")
		fields := []Stat{statCount("Employees", count)}
		fields = appendNumber(fields, d, "Avg Salary", statMoney, "avg_salary")
		fields = append(fields, statPercent("Share", sharePercent(d, "percentage", count, total)))
		return fields
	})
	return RenderModel{Key: "department_metrics", Title: "Department Metrics", Badge: "Departments", Items: items, Visible: topVisible}, true
}

func buildPerformanceOverview(rec Record) (RenderModel, bool) {
	perf := rec.Map("performance_overview")
	if len(perf) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, perf, "Avg Rating", statCount, "avg_performance_rating")
	stats = appendNumber(stats, perf, "Median Rating", statCount, "median_performance_rating")
	stats = appendNumber(stats, perf, "High Performers", statCount, "high_performers")
	stats = appendNumber(stats, perf, "Low Performers", statCount, "low_performers")
	stats = appendNumber(stats, perf, "Employees Rated", statCount, "employees_rated")
	return RenderModel{Key: "performance_overview", Title: "Performance Metrics", Badge: "Performance", Stats: stats}, true
}

func buildTurnoverRetention(rec Record) (RenderModel, bool) {
	tenure := rec.Map("tenure_metrics")
	turnover := rec.Map("turnover_metrics")
	stats := make([]Stat, 0, 5)
	stats = appendNumber(stats, tenure, "Avg Tenure (years)", statCount, "avg_tenure_years")
	stats = appendNumber(stats, tenure, "Long-Tenure Employees", statCount, "long_tenure_employees")
	stats = appendNumber(stats, turnover, "Annual Turnover Rate", statPercent, "annual_turnover_rate")
	stats = appendNumber(stats, turnover, "Terminations (12mo)", statCount, "terminations_last_year", "total_terminations")
	stats = appendNumber(stats, turnover, "New Hires (12mo)", statCount, "new_hires_last_year")
	if len(stats) == 0 {
		return RenderModel{}, false
	}
	return RenderModel{Key: "turnover_retention", Title: "Turnover & Retention", Badge: "Retention", Stats: stats}, true
}

func buildTrainingOverview(rec Record) (RenderModel, bool) {
	training := rec.Map("training_overview")
	if len(training) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 3)
	stats = appendNumber(stats, training, "Total Training Hours", statCount, "total_training_hours")
	stats = appendNumber(stats, training, "Avg Hours per Employee", statCount, "avg_training_per_employee", "avg_training_hours")
	stats = appendNumber(stats, training, "Employees Trained", statCount, "employees_trained", "employees_with_training")
	return RenderModel{Key: "training_overview", Title: "Training & Development", Badge: "Training", Stats: stats}, true
}

func buildDemographics(rec Record) (RenderModel, bool) {
	demo := rec.Map("demographics")
	if len(demo) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 3)
	stats = appendNumber(stats, demo, "Average Age", statCount, "avg_age")
	stats = appendNumber(stats, demo, "Median Age", statCount, "median_age")
	stats = appendNumber(stats, demo, "Locations", statCount, "unique_locations")

	groups := demo.Maps("age_distribution")
	if len(groups) == 0 {
		groups = demo.Maps("gender_distribution")
	}
	total := sumOf(groups, "employee_count")
	items := listItems(groups, []string{"age_group", "age_range", "gender"}, func(g Record) []Stat {
		count := g.NumberOr(0, "employee_count")
		return []Stat{
			statCount("Employees", count),
			statPercent("Share", sharePercent(g, "percentage", count, total)),
		}
	})
	return RenderModel{Key: "demographics", Title: "Demographics", Badge: "Demographics", Stats: stats, Items: items}, true
}

func buildAttendanceMetrics(rec Record) (RenderModel, bool) {
	attendance := rec.Map("attendance_metrics")
	if len(attendance) == 0 {
		return RenderModel{}, false
	}
	stats := make([]Stat, 0, 4)
	stats = appendNumber(stats, attendance, "Avg Sick Days", statCount, "avg_sick_days")
	stats = appendNumber(stats, attendance, "Avg Vacation Days", statCount, "avg_vacation_days")
	stats = appendNumber(stats, attendance, "Total Overtime Hours", statCount, "total_overtime_hours")
	stats = appendNumber(stats, attendance, "Employees with Overtime", statCount, "employees_with_overtime")
	return RenderModel{Key: "attendance_metrics", Title: "Attendance & Leave", Badge: "Attendance", Stats: stats}, true
}
