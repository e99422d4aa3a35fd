package filter

// Static sample collections the list screens render before live data
// arrives. The complaint set deliberately mixes categories, zones and SLA
// tags so every filter chip has at least one match.

// SampleComplaints returns the placeholder complaint cards.
func SampleComplaints() []ComplaintCard {
	return []ComplaintCard{
		{ID: "CMP-2024-0101", Title: "Water Supply Issue", Category: "Water Supply", Department: "Water Works", Zone: "Zone A", Location: "Shivaji Nagar, Ward 4", Status: "submitted", SLA: SLAOnTrack, Priority: "High", CreatedAt: "2024-11-02"},
		{ID: "CMP-2024-0102", Title: "Street Light Not Working", Category: "Street Lighting", Department: "Electrical", Zone: "Zone B", Location: "MG Road, Ward 7", Status: "assigned", SLA: SLANearing, Priority: "Medium", CreatedAt: "2024-11-03"},
		{ID: "CMP-2024-0103", Title: "Pothole on Main Road", Category: "Roads", Department: "Road Maintenance", Zone: "Zone A", Location: "Station Road, Ward 2", Status: "in_progress", SLA: SLABreached, Priority: "High", CreatedAt: "2024-10-21"},
		{ID: "CMP-2024-0104", Title: "Garbage Not Collected", Category: "Sanitation", Department: "Solid Waste", Zone: "Zone C", Location: "Gandhi Chowk, Ward 9", Status: "submitted", SLA: SLAOnTrack, Priority: "Low", CreatedAt: "2024-11-05"},
		{ID: "CMP-2024-0105", Title: "Water Pipeline Leakage", Category: "Water Supply", Department: "Water Works", Zone: "Zone B", Location: "Nehru Colony, Ward 5", Status: "assigned", SLA: SLABreached, Priority: "Critical", CreatedAt: "2024-10-18"},
		{ID: "CMP-2024-0106", Title: "Drainage Overflow", Category: "Drainage", Department: "Sewerage", Zone: "Zone A", Location: "Market Yard, Ward 3", Status: "in_progress", SLA: SLANearing, Priority: "High", CreatedAt: "2024-10-30"},
		{ID: "CMP-2024-0107", Title: "Broken Footpath", Category: "Roads", Department: "Road Maintenance", Zone: "Zone C", Location: "College Road, Ward 8", Status: "resolved", SLA: SLAOnTrack, Priority: "Low", CreatedAt: "2024-10-12"},
		{ID: "CMP-2024-0108", Title: "Contaminated Water Complaint", Category: "Water Supply", Department: "Water Works", Zone: "Zone C", Location: "Indira Nagar, Ward 10", Status: "submitted", SLA: SLANearing, Priority: "Critical", CreatedAt: "2024-11-04"},
		{ID: "CMP-2024-0109", Title: "Park Maintenance Pending", Category: "Parks", Department: "Horticulture", Zone: "Zone B", Location: "City Park, Ward 6", Status: "closed", SLA: SLAOnTrack, Priority: "Medium", CreatedAt: "2024-09-28"},
	}
}

// SampleAssets returns the placeholder asset cards.
func SampleAssets() []AssetCard {
	return []AssetCard{
		{ID: "AST-0041", Name: "Borewell Pump 12", Type: "Pump", Department: "Water Works", Division: "North", SubDivision: "North-1", Location: "Shivaji Nagar", Status: "active"},
		{ID: "AST-0042", Name: "Transformer T-7", Type: "Transformer", Department: "Electrical", Division: "South", SubDivision: "South-2", Location: "MG Road", Status: "maintenance"},
		{ID: "AST-0043", Name: "Garbage Compactor 3", Type: "Vehicle", Department: "Solid Waste", Division: "North", SubDivision: "North-2", Location: "Gandhi Chowk", Status: "active"},
		{ID: "AST-0044", Name: "Water Tanker 9", Type: "Vehicle", Department: "Water Works", Division: "South", SubDivision: "South-1", Location: "Nehru Colony", Status: "inactive"},
	}
}

// SampleTasks returns the placeholder task cards.
func SampleTasks() []TaskCard {
	return []TaskCard{
		{ID: "TSK-1201", Title: "Replace valve at pumping station", Project: "Water Network Upgrade", Department: "Water Works", Assignee: "R. Patil", Location: "Shivaji Nagar", Status: "in_progress", SLA: SLAOnTrack, DueDate: "2024-11-12"},
		{ID: "TSK-1202", Title: "Survey street lights on MG Road", Project: "Smart Lighting", Department: "Electrical", Assignee: "S. Kulkarni", Location: "MG Road", Status: "submitted", SLA: SLANearing, DueDate: "2024-11-08"},
		{ID: "TSK-1203", Title: "Patch potholes near station", Project: "Monsoon Road Repair", Department: "Road Maintenance", Assignee: "A. Deshmukh", Location: "Station Road", Status: "in_progress", SLA: SLABreached, DueDate: "2024-10-28"},
		{ID: "TSK-1204", Title: "Clear drainage at Market Yard", Project: "Monsoon Preparedness", Department: "Sewerage", Assignee: "V. Jadhav", Location: "Market Yard", Status: "closed", SLA: SLAOnTrack, DueDate: "2024-10-20"},
	}
}
