package screens

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/foodtracker/core"
	"github.com/jask/foodtracker/internal/photo"
)

const photoPickerScope = "screen:photo-picker"

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b4befe"))
	pickerDirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// PhotoPicker browses the filesystem for an image. It pops itself with a
// PhotoPickedMsg once a file decodes, or with a cancelled result on close.
type PhotoPicker struct {
	keys    *core.KeyRegistry
	picker  filepicker.Model
	loading string
}

func NewPhotoPicker(keys *core.KeyRegistry, startDir string, height int) *PhotoPicker {
	fp := filepicker.New()
	fp.AllowedTypes = photo.PickerTypes()
	fp.CurrentDirectory = startDir
	fp.ShowPermissions = false
	fp.Height = max(3, height)
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return &PhotoPicker{keys: keys, picker: fp}
}

func (p *PhotoPicker) Init() tea.Cmd { return p.picker.Init() }
func (p *PhotoPicker) Title() string { return "Choose Photo" }
func (p *PhotoPicker) Scope() string { return photoPickerScope }
func (p *PhotoPicker) Modal() bool   { return true }

func (p *PhotoPicker) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case core.DismissMsg:
		return p, pickedCmd(PickResult{Cancelled: true}), true
	case tea.KeyMsg:
		if p.keys.IsAction(msg, "close", photoPickerScope) {
			return p, pickedCmd(PickResult{Cancelled: true}), true
		}
		if p.loading != "" {
			return p, nil, false
		}
	case tea.MouseMsg:
		if p.loading != "" {
			return p, nil, false
		}
		// the file list has no hit testing; the wheel moves its cursor
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return p.Update(tea.KeyMsg{Type: tea.KeyUp})
		case tea.MouseButtonWheelDown:
			return p.Update(tea.KeyMsg{Type: tea.KeyDown})
		}
		return p, nil, false
	case photoLoadedMsg:
		p.loading = ""
		if msg.err != nil {
			return p, core.ErrorCmd(msg.err), false
		}
		return p, tea.Batch(pickedCmd(PickResult{Photo: msg.photo}), core.StatusCmd("Photo: "+filepath.Base(msg.photo.Path))), true
	}

	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)
	if ok, path := p.picker.DidSelectFile(msg); ok {
		p.loading = path
		return p, tea.Batch(cmd, loadPhotoCmd(path), core.StatusCmd("Loading "+filepath.Base(path)+"...")), false
	}
	if ok, path := p.picker.DidSelectDisabledFile(msg); ok {
		err := fmt.Errorf("%s: %w", filepath.Base(path), photo.ErrUnsupported)
		return p, tea.Batch(cmd, core.ErrorCmd(err)), false
	}
	return p, cmd, false
}

func (p *PhotoPicker) View(width, height int) string {
	lines := []string{
		pickerTitleStyle.Render(p.Title()),
		pickerDirStyle.Render(truncateLeft(p.picker.CurrentDirectory, max(10, width-2))),
		"",
	}
	if p.loading != "" {
		lines = append(lines, "Loading "+filepath.Base(p.loading)+"...")
	} else {
		lines = append(lines, p.picker.View())
	}
	return strings.Join(lines, "\n")
}

// truncateLeft keeps the tail of a path, which is the part that changes.
func truncateLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	return ansi.TruncateLeft(s, w-width+1, "…")
}
