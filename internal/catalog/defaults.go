package catalog

import "plateperfect/internal/model"

// Default returns the built-in catalog used when no catalog document is configured.
func Default() Catalog {
	c, err := New(map[model.Course][]model.Dish{
		model.CourseStarter: {
			{ID: "1", Name: "Bruschetta", Price: 50},
			{ID: "2", Name: "Stuffed Mushrooms", Price: 70},
		},
		model.CourseMainCourse: {
			{ID: "3", Name: "Grilled Salmon", Price: 120},
			{ID: "4", Name: "Beef Wellington", Price: 200},
		},
		model.CourseDessert: {
			{ID: "5", Name: "Chocolate Fondant", Price: 80},
			{ID: "6", Name: "Lemon Tart", Price: 70},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
