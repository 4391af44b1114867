package model

// DefaultTrips is the sample dataset materialized on first run.
func DefaultTrips() []Trip {
	return []Trip{
		{
			ID:   "default-trip-1",
			Name: "Summer Vacation",
			Date: "2025-07-15",
			Categories: []Category{
				{ID: "default-category-1", Name: "Clothing", Items: []Item{
					{ID: "default-item-1", Name: "T-shirts"},
					{ID: "default-item-2", Name: "Shorts"},
					{ID: "default-item-3", Name: "Swimwear"},
				}},
				{ID: "default-category-2", Name: "Toiletries", Items: []Item{
					{ID: "default-item-4", Name: "Toothbrush"},
					{ID: "default-item-5", Name: "Shampoo"},
					{ID: "default-item-6", Name: "Sunscreen"},
				}},
				{ID: "default-category-3", Name: "Electronics", Items: []Item{
					{ID: "default-item-7", Name: "Phone charger"},
					{ID: "default-item-8", Name: "Camera"},
					{ID: "default-item-9", Name: "Power bank"},
				}},
			},
		},
		{
			ID:   "default-trip-2",
			Name: "Business Trip",
			Date: "2025-09-10",
			Categories: []Category{
				{ID: "default-category-4", Name: "Clothing", Items: []Item{
					{ID: "default-item-10", Name: "Suits"},
					{ID: "default-item-11", Name: "Dress shirts"},
					{ID: "default-item-12", Name: "Ties"},
				}},
				{ID: "default-category-5", Name: "Documents", Items: []Item{
					{ID: "default-item-13", Name: "Passport"},
					{ID: "default-item-14", Name: "Business cards"},
					{ID: "default-item-15", Name: "Presentation materials"},
				}},
			},
		},
	}
}
