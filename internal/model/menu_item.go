package model

// MenuItem is a dish on the menu. Description and Course are optional: items picked from a
// category browser carry neither.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Course      *Course `json:"course,omitempty"`
	Price       int     `json:"price"`
}

// Clone returns a deep copy so callers never share the optional fields with the store.
func (m MenuItem) Clone() MenuItem {
	out := m
	if m.Description != nil {
		d := *m.Description
		out.Description = &d
	}
	if m.Course != nil {
		c := *m.Course
		out.Course = &c
	}
	return out
}

// MenuItemForm is the raw input of the add form. Price stays text until it is validated.
type MenuItemForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Course      string `json:"course"`
	Price       string `json:"price"`
}

// Dish is a predefined catalog entry.
type Dish struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Price int    `json:"price" yaml:"price"`
}

// MenuItem converts the dish into the item handed back to the home view.
func (d Dish) MenuItem() MenuItem {
	return MenuItem{ID: d.ID, Name: d.Name, Price: d.Price}
}

// CourseGroup is one section of the home list.
type CourseGroup struct {
	Course string     `json:"course"`
	Items  []MenuItem `json:"items"`
}

// CourseDishes is one category browser's catalog.
type CourseDishes struct {
	Course Course `json:"course"`
	Slug   string `json:"slug"`
	Dishes []Dish `json:"dishes"`
}

// MenuSummary is everything the home view renders.
type MenuSummary struct {
	Items               []MenuItem    `json:"items"`
	Groups              []CourseGroup `json:"groups"`
	Count               int           `json:"count"`
	AveragePrice        float64       `json:"averagePrice"`
	AveragePriceDisplay string        `json:"averagePriceDisplay"`
	AvailableDishes     int           `json:"availableDishes"`
}

// UnassignedGroup names the home list section for items without a known course.
const UnassignedGroup = "Unassigned"
