package catalog

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"

	"plateperfect/internal/model"

	"gopkg.in/yaml.v3"
)

// document is the on-disk catalog layout:
//
//	courses:
//	  - course: Starters
//	    dishes:
//	      - {id: "1", name: Bruschetta, price: 50}
type document struct {
	Courses []section `yaml:"courses"`
}

type section struct {
	Course string       `yaml:"course"`
	Dishes []model.Dish `yaml:"dishes"`
}

// Decode parses a catalog document. Gzip input is detected from its magic bytes.
func Decode(r io.Reader) (Catalog, error) {
	br := bufio.NewReader(r)

	var src io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	var doc document
	if err := yaml.NewDecoder(src).Decode(&doc); err != nil {
		if err == io.EOF {
			return New(nil)
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	dishes := make(map[model.Course][]model.Dish)
	for _, section := range doc.Courses {
		course, err := model.ParseCourse(section.Course)
		if err != nil || course == nil {
			return nil, invalid("unknown course %q", section.Course)
		}
		dishes[*course] = append(dishes[*course], section.Dishes...)
	}

	return New(dishes)
}

// Encode writes c as a catalog document, gzipped when compress is set.
func Encode(w io.Writer, c Catalog, compress bool) error {
	var doc document
	for _, course := range model.Courses() {
		dishes := c.Dishes(course)
		if len(dishes) == 0 {
			continue
		}
		doc.Courses = append(doc.Courses, section{Course: string(course), Dishes: dishes})
	}

	out := w
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(w)
		out = gz
	}

	enc := yaml.NewEncoder(out)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush catalog: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to close gzip writer: %w", err)
		}
	}
	return nil
}
