package widgets

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

var (
	_ Widget = StarRow{}
	_ Widget = Thumbnail{}
)
