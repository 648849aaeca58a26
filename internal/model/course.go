package model

import "strings"

// Course is the canonical course enumeration. Older labels mixed singular and plural
// forms ("Starter"/"Starters", "Dessert"/"Desserts"); ParseCourse folds all of them here.
type Course string

const (
	CourseStarter    Course = "Starter"
	CourseMainCourse Course = "Main Course"
	CourseDessert    Course = "Dessert"
)

// Courses lists every course in menu order.
func Courses() []Course {
	return []Course{CourseStarter, CourseMainCourse, CourseDessert}
}

var courseAliases = map[string]Course{
	"starter":      CourseStarter,
	"starters":     CourseStarter,
	"main":         CourseMainCourse,
	"main course":  CourseMainCourse,
	"main courses": CourseMainCourse,
	"maincourse":   CourseMainCourse,
	"main-course":  CourseMainCourse,
	"dessert":      CourseDessert,
	"desserts":     CourseDessert,
}

// ParseCourse maps a free-text label to a course. An empty label yields nil (no course).
func ParseCourse(label string) (*Course, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return nil, nil
	}
	c, ok := courseAliases[key]
	if !ok {
		return nil, ErrInvalidCourse
	}
	return &c, nil
}

// Slug returns the URL form of the course.
func (c Course) Slug() string {
	switch c {
	case CourseStarter:
		return "starters"
	case CourseMainCourse:
		return "main-course"
	case CourseDessert:
		return "desserts"
	}
	return ""
}

// Valid reports whether c is one of the canonical courses.
func (c Course) Valid() bool {
	return c == CourseStarter || c == CourseMainCourse || c == CourseDessert
}
