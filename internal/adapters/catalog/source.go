// Package catalog loads the prayer catalog from YAML.
// The default catalog is embedded in the binary; a file path can replace it.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

//go:embed prayers.yaml
var embeddedPrayers []byte

// validate checks record shape. Cross-record invariants (unique ids) live in domain.NewCatalog.
var validate = validator.New(validator.WithRequiredStructEnabled())

// document is the on-disk catalog layout.
type document struct {
	Prayers []record `yaml:"prayers"`
}

// record is one prayer as written in YAML.
type record struct {
	ID         string   `yaml:"id"         validate:"required"`
	Title      string   `yaml:"title"      validate:"required"`
	Body       string   `yaml:"body"       validate:"required"`
	Tags       []string `yaml:"tags"       validate:"dive,required"`
	Emotions   []string `yaml:"emotions"   validate:"required,min=1,dive,required"`
	Situations []string `yaml:"situations" validate:"required,min=1,dive,required"`
}

func (r *record) toDomain() domain.Prayer {
	return domain.Prayer{
		ID:         strings.TrimSpace(r.ID),
		Title:      strings.TrimSpace(r.Title),
		Body:       strings.TrimRight(r.Body, "\n"),
		Tags:       r.Tags,
		Emotions:   r.Emotions,
		Situations: r.Situations,
	}
}

// Source reads prayers from YAML. It implements ports.PrayerSource.
type Source struct {
	path string
	data []byte
}

// NewSource returns a source for the YAML file at path.
// An empty path selects the embedded catalog.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// NewSourceFromBytes returns a source backed by in-memory YAML.
func NewSourceFromBytes(data []byte) *Source {
	return &Source{data: data}
}

// Origin describes where the catalog comes from, for logging.
func (s *Source) Origin() string {
	switch {
	case s.path != "":
		return s.path
	case s.data != nil:
		return "memory"
	default:
		return "embedded"
	}
}

// Load parses and validates every record.
func (s *Source) Load(ctx context.Context) ([]domain.Prayer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.read()
	if err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", s.Origin(), errors.Join(domain.ErrInvalidCatalog, err))
	}

	prayers := make([]domain.Prayer, 0, len(doc.Prayers))

	for i := range doc.Prayers {
		rec := &doc.Prayers[i]
		if err := validate.Struct(rec); err != nil {
			return nil, domain.NewCatalogError(i, rec.ID, describe(err))
		}

		prayers = append(prayers, rec.toDomain())
	}

	return prayers, nil
}

func (s *Source) read() ([]byte, error) {
	switch {
	case s.path != "":
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}

		return data, nil
	case s.data != nil:
		return s.data, nil
	default:
		return embeddedPrayers, nil
	}
}

// describe turns validator output into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" "+fe.Tag())
	}

	return strings.Join(parts, ", ")
}

// Load builds the immutable domain catalog from a source.
func Load(ctx context.Context, src ports.PrayerSource) (*domain.Catalog, error) {
	prayers, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewCatalog(prayers)
}
