package meal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Sink receives saved meals.
type Sink interface {
	Consume(Record) error
}

type photoDoc struct {
	Path   string `yaml:"path" json:"path"`
	Format string `yaml:"format" json:"format"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

type recordDoc struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Rating    int       `yaml:"rating" json:"rating"`
	Photo     *photoDoc `yaml:"photo,omitempty" json:"photo,omitempty"`
	CreatedAt string    `yaml:"created_at" json:"created_at"`
}

func toDoc(r Record) recordDoc {
	doc := recordDoc{
		ID:        r.ID,
		Name:      r.Name,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.Photo != nil {
		doc.Photo = &photoDoc{
			Path:   r.Photo.Path,
			Format: r.Photo.Format,
			Width:  r.Photo.Width(),
			Height: r.Photo.Height(),
		}
	}
	return doc
}

// WriterSink encodes each record to W as a YAML document or a JSON line.
type WriterSink struct {
	W      io.Writer
	Format string // yaml | json
}

func NewWriterSink(w io.Writer, format string) (*WriterSink, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "", "yaml", "yml":
		f = "yaml"
	case "json":
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &WriterSink{W: w, Format: f}, nil
}

func (s *WriterSink) Consume(r Record) error {
	doc := toDoc(r)
	switch s.Format {
	case "json":
		if err := json.NewEncoder(s.W).Encode(doc); err != nil {
			return fmt.Errorf("encode meal json: %w", err)
		}
	default:
		enc := yaml.NewEncoder(s.W)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode meal yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush meal yaml: %w", err)
		}
	}
	return nil
}

// Collector keeps records in memory; the last one is the most recent save.
type Collector struct {
	Records []Record
}

func (c *Collector) Consume(r Record) error {
	c.Records = append(c.Records, r)
	return nil
}

func (c *Collector) Last() (Record, bool) {
	if len(c.Records) == 0 {
		return Record{}, false
	}
	return c.Records[len(c.Records)-1], true
}
