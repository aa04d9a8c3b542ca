package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/foodtracker/internal/photo"
)

// PickResult is the outcome of a photo pick. A completed pick always
// carries a photo.
type PickResult struct {
	Photo     *photo.Photo
	Cancelled bool
}

type PhotoPickedMsg struct {
	Result PickResult
}

type photoLoadedMsg struct {
	photo *photo.Photo
	err   error
}

func pickedCmd(r PickResult) tea.Cmd {
	return func() tea.Msg { return PhotoPickedMsg{Result: r} }
}

func loadPhotoCmd(path string) tea.Cmd {
	return func() tea.Msg {
		p, err := photo.Load(path)
		return photoLoadedMsg{photo: p, err: err}
	}
}
