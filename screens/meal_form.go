package screens

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/foodtracker/core"
	"github.com/jask/foodtracker/internal/meal"
	"github.com/jask/foodtracker/internal/photo"
	"github.com/jask/foodtracker/internal/rating"
	"github.com/jask/foodtracker/widgets"
)

type formField int

const (
	fieldName formField = iota
	fieldPhoto
	fieldRating
	fieldSave
	fieldCancel
	fieldCount
)

func (f formField) String() string {
	switch f {
	case fieldName:
		return "name"
	case fieldPhoto:
		return "photo"
	case fieldRating:
		return "rating"
	case fieldSave:
		return "save"
	case fieldCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

const (
	saveLabel   = "Save"
	cancelLabel = "Cancel"
	buttonGap   = 2
)

var a11yStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Italic(true)

// FormOptions wires the meal form to its host. Hooks may be nil.
type FormOptions struct {
	Rating        *rating.Control
	Keys          *core.KeyRegistry
	Metrics       widgets.CellMetrics
	PreviewWidth  int
	PreviewHeight int
	Debug         bool

	OpenPhotoPicker    func() core.Screen
	OnTextEditingEnded func(name string)
	OnSaveRequested    func(meal.Record)
	OnCancel           func()
}

// MealForm hosts the name field, photo preview and rating control, and
// assembles a meal.Record when saved.
type MealForm struct {
	opts    FormOptions
	rating  *rating.Control
	keys    *core.KeyRegistry
	name    textinput.Model
	preview *photo.Photo
	focus   formField
	cursor  int
	pressed formField // button or preview under a mouse press, fieldCount for none
}

func NewMealForm(opts FormOptions) *MealForm {
	if opts.Rating == nil {
		opts.Rating = rating.New()
	}
	if opts.Keys == nil {
		opts.Keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if opts.Metrics.Width <= 0 || opts.Metrics.Height <= 0 {
		opts.Metrics = widgets.DefaultCellMetrics
	}
	if opts.PreviewWidth <= 0 {
		opts.PreviewWidth = 24
	}
	if opts.PreviewHeight <= 0 {
		opts.PreviewHeight = 8
	}
	inp := textinput.New()
	inp.Placeholder = "Enter meal name"
	inp.Prompt = "> "
	inp.CharLimit = 120
	inp.Focus()
	return &MealForm{
		opts:    opts,
		rating:  opts.Rating,
		keys:    opts.Keys,
		name:    inp,
		focus:   fieldName,
		pressed: fieldCount,
	}
}

func (f *MealForm) Init() tea.Cmd { return textinput.Blink }
func (f *MealForm) Title() string { return "New Meal" }
func (f *MealForm) Scope() string { return "form:" + f.focus.String() }

// Name is the current text of the name field.
func (f *MealForm) Name() string { return f.name.Value() }

func (f *MealForm) SetName(name string) { f.name.SetValue(name) }

// Preview is the photo shown in the preview box, or nil.
func (f *MealForm) Preview() *photo.Photo { return f.preview }

func (f *MealForm) Rating() *rating.Control { return f.rating }

// ImagePicked applies the outcome of a photo pick. A cancelled pick keeps
// the current preview. A completed pick without a photo means the picker
// broke its contract and there is nothing sensible to show.
func (f *MealForm) ImagePicked(r PickResult) {
	if r.Cancelled {
		return
	}
	if r.Photo == nil {
		panic("screens: photo pick completed without an image")
	}
	f.preview = r.Photo
}

// SaveRequested snapshots the form into a record and hands it to the host.
func (f *MealForm) SaveRequested() meal.Record {
	rec := meal.NewRecord(f.name.Value(), f.preview, f.rating.CurrentRating())
	if f.opts.Debug {
		log.Printf("debug: saving meal %s name=%q rating=%d photo=%t", rec.ID, rec.Name, rec.Rating, rec.HasPhoto())
	}
	if f.opts.OnSaveRequested != nil {
		f.opts.OnSaveRequested(rec)
	}
	return rec
}

func (f *MealForm) cancel() {
	if f.opts.Debug {
		log.Printf("debug: save was not requested, cancelling")
	}
	if f.opts.OnCancel != nil {
		f.opts.OnCancel()
	}
}

func (f *MealForm) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case PhotoPickedMsg:
		f.ImagePicked(msg.Result)
		return f, nil, false
	case tea.KeyMsg:
		return f.handleKey(msg)
	case tea.MouseMsg:
		return f.handleMouse(msg)
	}
	if f.focus == fieldName {
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return f, cmd, false
	}
	return f, nil, false
}

func (f *MealForm) handleKey(msg tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	action, ok := f.keys.Action(msg, f.Scope())
	if !ok {
		if f.focus == fieldName {
			var cmd tea.Cmd
			f.name, cmd = f.name.Update(msg)
			return f, cmd, false
		}
		return f, nil, false
	}
	switch action {
	case "save":
		f.SaveRequested()
		return f, nil, true
	case "cancel":
		f.cancel()
		return f, nil, true
	case "activate":
		if f.focus == fieldSave {
			f.SaveRequested()
		} else {
			f.cancel()
		}
		return f, nil, true
	case "next-field":
		return f, f.setFocus((f.focus + 1) % fieldCount), false
	case "prev-field":
		return f, f.setFocus((f.focus + fieldCount - 1) % fieldCount), false
	case "end-editing":
		f.endEditing()
		return f, nil, false
	case "pick-photo":
		return f, f.openPicker(), false
	case "star-prev":
		if f.cursor > 0 {
			f.cursor--
		}
	case "star-next":
		if f.cursor < f.rating.StarCount()-1 {
			f.cursor++
		}
	case "star-tap":
		if f.rating.StarCount() > 0 {
			f.rating.HandleTap(f.cursor)
		}
	case "star-set":
		n, err := strconv.Atoi(msg.String())
		if err != nil || n < 1 || n > f.rating.StarCount() {
			return f, core.ErrorCmd(fmt.Errorf("no star %s", msg.String())), false
		}
		f.cursor = n - 1
		f.rating.HandleTap(f.cursor)
	}
	return f, nil, false
}

func (f *MealForm) handleMouse(msg tea.MouseMsg) (core.Screen, tea.Cmd, bool) {
	l := f.layout()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return f, nil, false
		}
		target, star := l.hit(msg.X, msg.Y)
		switch target {
		case fieldName:
			return f, f.setFocus(fieldName), false
		case fieldRating:
			cmd := f.setFocus(fieldRating)
			f.cursor = star
			f.rating.Press(star)
			return f, cmd, false
		case fieldPhoto, fieldSave, fieldCancel:
			f.pressed = target
			return f, f.setFocus(target), false
		}
	case tea.MouseActionRelease:
		target, star := l.hit(msg.X, msg.Y)
		if f.rating.Pressed() >= 0 {
			if target == fieldRating {
				f.rating.Release(star)
			} else {
				f.rating.CancelPress()
			}
			return f, nil, false
		}
		pressed := f.pressed
		f.pressed = fieldCount
		if pressed != target {
			return f, nil, false
		}
		switch target {
		case fieldPhoto:
			return f, f.openPicker(), false
		case fieldSave:
			f.SaveRequested()
			return f, nil, true
		case fieldCancel:
			f.cancel()
			return f, nil, true
		}
	}
	return f, nil, false
}

func (f *MealForm) setFocus(next formField) tea.Cmd {
	if next == f.focus {
		if next == fieldName && !f.name.Focused() {
			return f.name.Focus()
		}
		return nil
	}
	if f.focus == fieldName {
		f.endEditing()
	}
	f.focus = next
	if next == fieldName {
		return f.name.Focus()
	}
	if next == fieldRating && f.cursor >= f.rating.StarCount() {
		f.cursor = max(0, f.rating.StarCount()-1)
	}
	return nil
}

func (f *MealForm) endEditing() {
	if !f.name.Focused() {
		return
	}
	f.name.Blur()
	if f.opts.OnTextEditingEnded != nil {
		f.opts.OnTextEditingEnded(f.name.Value())
	}
}

func (f *MealForm) openPicker() tea.Cmd {
	f.endEditing()
	if f.opts.OpenPhotoPicker == nil {
		return core.StatusCmd("Photo picker unavailable")
	}
	return core.PushScreenCmd(f.opts.OpenPhotoPicker())
}

// formLayout records where each part of the form is drawn, relative to the
// top-left of the screen body.
type formLayout struct {
	nameY    int
	photoY   int
	photoW   int
	photoH   int
	starsY   int
	stars    widgets.StarRow
	a11yY    int
	buttonsY int
	saveW    int
	cancelX  int
	cancelW  int
	height   int
}

func (f *MealForm) starRow() widgets.StarRow {
	focus := -1
	if f.focus == fieldRating {
		focus = f.cursor
	}
	return widgets.StarRow{
		Stars:   f.rating.Stars(),
		Size:    f.rating.StarSize(),
		Metrics: f.opts.Metrics,
		Focus:   focus,
	}
}

func (f *MealForm) layout() formLayout {
	l := formLayout{stars: f.starRow()}
	y := 0
	y++ // name label
	l.nameY = y
	y += 2
	y++ // photo label
	l.photoY = y
	l.photoW = f.opts.PreviewWidth + 1
	l.photoH = f.opts.PreviewHeight
	y += l.photoH + 1
	y++ // rating label
	l.starsY = y
	y += max(1, l.stars.Height())
	l.a11yY = y
	y += 2
	l.buttonsY = y
	l.saveW = widgets.ButtonWidth(saveLabel)
	l.cancelX = l.saveW + buttonGap
	l.cancelW = widgets.ButtonWidth(cancelLabel)
	l.height = y + 1
	return l
}

// hit reports which field is drawn at (x, y) and, for the rating row, which
// star. fieldCount means nothing was hit.
func (l formLayout) hit(x, y int) (formField, int) {
	switch {
	case y == l.nameY:
		return fieldName, -1
	case y >= l.photoY && y < l.photoY+l.photoH && x >= 0 && x < l.photoW:
		return fieldPhoto, -1
	case y >= l.starsY && y < l.starsY+l.stars.Height():
		if i, ok := l.stars.HitTest(x, y-l.starsY); ok {
			return fieldRating, i
		}
	case y == l.buttonsY && x >= 0 && x < l.saveW:
		return fieldSave, -1
	case y == l.buttonsY && x >= l.cancelX && x < l.cancelX+l.cancelW:
		return fieldCancel, -1
	}
	return fieldCount, -1
}

func (f *MealForm) View(width, height int) string {
	l := f.layout()
	f.name.Width = max(10, min(48, width-4))

	lines := make([]string, 0, l.height)
	lines = append(lines, widgets.Label("Meal Name", f.focus == fieldName), f.name.View(), "")
	lines = append(lines, widgets.Label("Photo", f.focus == fieldPhoto))
	thumb := widgets.Thumbnail{Photo: f.preview, Focused: f.focus == fieldPhoto}
	lines = append(lines, block(thumb, l.photoW, l.photoH)...)
	lines = append(lines, "")
	lines = append(lines, widgets.Label("Rating", f.focus == fieldRating))
	lines = append(lines, block(l.stars, width, l.stars.Height())...)
	lines = append(lines, a11yStyle.Render(f.accessibilityText()), "")
	lines = append(lines, widgets.Button(saveLabel, f.focus == fieldSave)+
		strings.Repeat(" ", buttonGap)+
		widgets.Button(cancelLabel, f.focus == fieldCancel))
	return strings.Join(lines, "\n")
}

func block(w widgets.Widget, width, height int) []string {
	return strings.Split(w.Render(width, height), "\n")
}

// accessibilityText describes the star under the keyboard cursor, or the
// rating as a whole when the row is not focused.
func (f *MealForm) accessibilityText() string {
	if f.focus != fieldRating {
		return f.rating.ValueText()
	}
	s, ok := f.rating.Star(f.cursor)
	if !ok {
		return f.rating.ValueText()
	}
	parts := []string{s.Label, s.Value}
	if s.Hint != "" {
		parts = append(parts, s.Hint)
	}
	return strings.Join(parts, " · ")
}
