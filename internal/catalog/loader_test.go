package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plateperfect/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `
courses:
  - course: Starters
    dishes:
      - {id: "s1", name: Soup, price: 40}
  - course: main course
    dishes:
      - {id: "m1", name: Risotto, price: 140}
      - {id: "m2", name: Steak, price: 210}
  - course: Desserts
    dishes:
      - {id: "d1", name: Pavlova, price: 65}
`

// createTestCatalogFile writes content to a temp file, gzipping it when compress is set.
func createTestCatalogFile(t *testing.T, filename, content string, compress bool) string {
	filePath := filepath.Join(t.TempDir(), filename)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	if !compress {
		_, err = file.WriteString(content)
		require.NoError(t, err)
		return filePath
	}

	gzipWriter := gzip.NewWriter(file)
	_, err = gzipWriter.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())

	return filePath
}

func TestFileLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		compress bool
	}{
		{name: "Plain YAML", filename: "catalog.yaml", compress: false},
		{name: "Gzipped YAML", filename: "catalog.yaml.gz", compress: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFileLoader(zerolog.Nop())
			filePath := createTestCatalogFile(t, tt.filename, sampleDocument, tt.compress)

			c, err := loader.Load(context.Background(), filePath)

			require.NoError(t, err)
			assert.Equal(t, 4, c.Size())
			assert.Len(t, c.Dishes(model.CourseMainCourse), 2)

			course, ok := c.CourseOf("d1")
			require.True(t, ok)
			assert.Equal(t, model.CourseDessert, course)
		})
	}
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	c, err := loader.Load(context.Background(), "/nonexistent/catalog.yaml")

	assert.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "failed to open catalog file")
}

func TestFileLoader_Load_UnknownCourse(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestCatalogFile(t, "bad.yaml", "courses:\n  - course: Brunch\n    dishes: []\n", false)

	_, err := loader.Load(context.Background(), filePath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course")
}

func TestFileLoader_Load_CancelledContext(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestCatalogFile(t, "catalog.yaml", sampleDocument, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, filePath)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_EmptyDocument(t *testing.T) {
	c, err := Decode(strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, 0, c.Size())
}

func TestEncodeDecodeDefault(t *testing.T) {
	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, Default(), compress))

		c, err := Decode(&buf)
		require.NoError(t, err)

		for _, course := range model.Courses() {
			assert.Equal(t, Default().Dishes(course), c.Dishes(course))
		}
	}
}
