package meal

import (
	"bytes"
	"encoding/json"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jask/foodtracker/internal/photo"
)

func fixedRecord(p *photo.Photo) Record {
	return Record{
		ID:        "3f2b6b5e-8f47-4d8b-9a49-5d0e7a1c2b11",
		Name:      "Caprese Salad",
		Photo:     p,
		Rating:    4,
		CreatedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord("", nil, 0)
	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	require.Empty(t, r.Name)
	require.False(t, r.HasPhoto())
	require.Zero(t, r.Rating)
	require.False(t, r.CreatedAt.IsZero())

	other := NewRecord("", nil, 0)
	require.NotEqual(t, r.ID, other.ID)
}

func TestWriterSinkYAML(t *testing.T) {
	var buf bytes.Buffer
	sink, err := NewWriterSink(&buf, "")
	require.NoError(t, err)
	p := &photo.Photo{Path: "/tmp/salad.png", Format: "png", Image: image.NewRGBA(image.Rect(0, 0, 6, 3))}
	require.NoError(t, sink.Consume(fixedRecord(p)))

	var doc recordDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "Caprese Salad", doc.Name)
	require.Equal(t, 4, doc.Rating)
	require.Equal(t, "2026-03-01T12:30:00Z", doc.CreatedAt)
	require.NotNil(t, doc.Photo)
	require.Equal(t, 6, doc.Photo.Width)
	require.Equal(t, 3, doc.Photo.Height)
	require.Equal(t, "png", doc.Photo.Format)
}

func TestWriterSinkJSONWithoutPhoto(t *testing.T) {
	var buf bytes.Buffer
	sink, err := NewWriterSink(&buf, "JSON")
	require.NoError(t, err)
	require.NoError(t, sink.Consume(fixedRecord(nil)))

	require.NotContains(t, buf.String(), "photo")
	var doc recordDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "3f2b6b5e-8f47-4d8b-9a49-5d0e7a1c2b11", doc.ID)
	require.Nil(t, doc.Photo)
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriterSinkUnknownFormat(t *testing.T) {
	_, err := NewWriterSink(&bytes.Buffer{}, "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCollector(t *testing.T) {
	var c Collector
	_, ok := c.Last()
	require.False(t, ok)
	require.NoError(t, c.Consume(fixedRecord(nil)))
	last, ok := c.Last()
	require.True(t, ok)
	require.Equal(t, "Caprese Salad", last.Name)
}
