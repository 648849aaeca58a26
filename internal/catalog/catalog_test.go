package catalog

import (
	"errors"
	"testing"

	"plateperfect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 6, c.Size())
	assert.Equal(t, []model.Dish{
		{ID: "1", Name: "Bruschetta", Price: 50},
		{ID: "2", Name: "Stuffed Mushrooms", Price: 70},
	}, c.Dishes(model.CourseStarter))

	dish, ok := c.Find(model.CourseMainCourse, "3")
	require.True(t, ok)
	assert.Equal(t, "Grilled Salmon", dish.Name)
	assert.Equal(t, 120, dish.Price)

	_, ok = c.Find(model.CourseDessert, "3")
	assert.False(t, ok, "dish ids are scoped to their course")

	course, ok := c.CourseOf("6")
	require.True(t, ok)
	assert.Equal(t, model.CourseDessert, course)
}

func TestDishesReturnsCopy(t *testing.T) {
	c := Default()

	dishes := c.Dishes(model.CourseStarter)
	dishes[0].Name = "changed"

	assert.Equal(t, "Bruschetta", c.Dishes(model.CourseStarter)[0].Name)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		dishes map[model.Course][]model.Dish
		errMsg string
	}{
		{
			name: "Duplicate id across courses",
			dishes: map[model.Course][]model.Dish{
				model.CourseStarter: {{ID: "1", Name: "A", Price: 1}},
				model.CourseDessert: {{ID: "1", Name: "B", Price: 1}},
			},
			errMsg: "appears in both",
		},
		{
			name: "Negative price",
			dishes: map[model.Course][]model.Dish{
				model.CourseStarter: {{ID: "1", Name: "A", Price: -1}},
			},
			errMsg: "negative price",
		},
		{
			name: "Missing name",
			dishes: map[model.Course][]model.Dish{
				model.CourseStarter: {{ID: "1", Price: 1}},
			},
			errMsg: "has no name",
		},
		{
			name: "Missing id",
			dishes: map[model.Course][]model.Dish{
				model.CourseStarter: {{Name: "A", Price: 1}},
			},
			errMsg: "has no id",
		},
		{
			name: "Unknown course",
			dishes: map[model.Course][]model.Dish{
				model.Course("Brunch"): {{ID: "1", Name: "A", Price: 1}},
			},
			errMsg: "unknown course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.dishes)

			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), tt.errMsg)

			var domainErr *model.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, model.ErrCodeInvalidCatalog, domainErr.Code)
		})
	}
}

func TestNew_Empty(t *testing.T) {
	c, err := New(nil)

	require.NoError(t, err)
	assert.Equal(t, 0, c.Size())
	assert.Empty(t, c.Dishes(model.CourseStarter))
}
