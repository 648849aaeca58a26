package catalog

import (
	"context"
	"fmt"

	"plateperfect/internal/model"
)

// Catalog is the read-only set of predefined dishes offered by the category browsers.
type Catalog interface {
	// Dishes returns the dishes of one course in display order.
	Dishes(course model.Course) []model.Dish

	// Find looks up a dish by id within one course.
	Find(course model.Course, id string) (model.Dish, bool)

	// CourseOf returns the course a dish id belongs to.
	CourseOf(id string) (model.Course, bool)

	// Size returns the total number of dishes across all courses.
	Size() int
}

// Loader defines the interface for loading catalog documents.
type Loader interface {
	// Load reads a YAML catalog document, plain or gzipped, and returns a Catalog.
	Load(ctx context.Context, path string) (Catalog, error)
}

// mapCatalog implements Catalog with per-course slices and an id index.
type mapCatalog struct {
	dishes  map[model.Course][]model.Dish
	courses map[string]model.Course
	size    int
}

// New builds a catalog from dishes grouped by course. Ids must be unique across the whole
// catalog, names non-empty and prices non-negative.
func New(dishes map[model.Course][]model.Dish) (Catalog, error) {
	c := &mapCatalog{
		dishes:  make(map[model.Course][]model.Dish, len(dishes)),
		courses: make(map[string]model.Course),
	}

	for course := range dishes {
		if !course.Valid() {
			return nil, invalid("unknown course %q", course)
		}
	}

	for _, course := range model.Courses() {
		for _, d := range dishes[course] {
			if d.ID == "" {
				return nil, invalid("dish %q in %s has no id", d.Name, course)
			}
			if d.Name == "" {
				return nil, invalid("dish %s in %s has no name", d.ID, course)
			}
			if d.Price < 0 {
				return nil, invalid("dish %s in %s has a negative price", d.ID, course)
			}
			if other, dup := c.courses[d.ID]; dup {
				return nil, invalid("dish id %s appears in both %s and %s", d.ID, other, course)
			}
			c.courses[d.ID] = course
			c.dishes[course] = append(c.dishes[course], d)
			c.size++
		}
	}

	return c, nil
}

func invalid(format string, args ...interface{}) error {
	return model.NewDomainError(model.ErrCodeInvalidCatalog, fmt.Sprintf(format, args...))
}

// Dishes returns the dishes of one course in display order.
func (c *mapCatalog) Dishes(course model.Course) []model.Dish {
	src := c.dishes[course]
	out := make([]model.Dish, len(src))
	copy(out, src)
	return out
}

// Find looks up a dish by id within one course.
func (c *mapCatalog) Find(course model.Course, id string) (model.Dish, bool) {
	for _, d := range c.dishes[course] {
		if d.ID == id {
			return d, true
		}
	}
	return model.Dish{}, false
}

// CourseOf returns the course a dish id belongs to.
func (c *mapCatalog) CourseOf(id string) (model.Course, bool) {
	course, ok := c.courses[id]
	return course, ok
}

// Size returns the total number of dishes across all courses.
func (c *mapCatalog) Size() int {
	return c.size
}
