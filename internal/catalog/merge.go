package catalog

import (
	"context"
	"fmt"
	"sync"

	"plateperfect/internal/model"

	"github.com/rs/zerolog"
)

// LoadAll loads every document concurrently and merges them in path order. A dish id
// may appear in only one document.
func LoadAll(ctx context.Context, loader Loader, paths []string, logger zerolog.Logger) (Catalog, error) {
	logger = logger.With().Str("component", "catalog-loader").Logger()

	logger.Info().
		Int("file_count", len(paths)).
		Msg("loading catalog documents")

	type loadResult struct {
		index   int
		catalog Catalog
		err     error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			c, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index:   index,
				catalog: c,
				err:     err,
			}
		}(i, path)
	}

	// Wait for all loads to complete
	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	catalogs := make([]Catalog, 0, len(paths))
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", paths[i]).
				Msg("failed to load catalog document")
			return nil, fmt.Errorf("failed to load catalog document %s: %w", paths[i], result.err)
		}
		catalogs = append(catalogs, result.catalog)
		logger.Info().
			Str("file", paths[i]).
			Int("size", result.catalog.Size()).
			Msg("catalog document loaded")
	}

	merged, err := Merge(catalogs...)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("total_dishes", merged.Size()).
		Msg("catalog loaded successfully")

	return merged, nil
}

// Merge combines catalogs course by course, keeping the order of the arguments.
func Merge(catalogs ...Catalog) (Catalog, error) {
	dishes := make(map[model.Course][]model.Dish)
	for _, c := range catalogs {
		for _, course := range model.Courses() {
			dishes[course] = append(dishes[course], c.Dishes(course)...)
		}
	}
	return New(dishes)
}
