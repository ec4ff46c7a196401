package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// RecordList shows a list of records with add, edit and remove controls.
// The caller owns the records and pushes changes back through SetData.
type RecordList[T any] struct {
	list        *widget.List
	data        []T
	selectedIdx int
	config      RecordListConfig[T]

	editButton   *widget.Button
	removeButton *widget.Button
	emptyLabel   *widget.Label
}

// RecordListConfig configures a record list
type RecordListConfig[T any] struct {
	Render    func(T) string // Single line shown per record
	OnAdd     func()         // Add pressed
	OnEdit    func(int)      // Edit pressed or item double-selected
	OnRemove  func(int)      // Remove pressed with a selection
	EmptyText string         // Shown in place of the list when there are no records
	MinHeight float32
}

// NewRecordList creates a record list and its container
func NewRecordList[T any](data []T, config RecordListConfig[T]) (*RecordList[T], *fyne.Container) {
	rl := &RecordList[T]{
		data:        data,
		selectedIdx: -1,
		config:      config,
	}

	rl.list = widget.NewList(
		func() int {
			return len(rl.data)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i < len(rl.data) {
				o.(*widget.Label).SetText(rl.render(i))
			}
		})

	rl.list.OnSelected = func(id widget.ListItemID) {
		rl.selectedIdx = id
		rl.updateButtons()
	}
	rl.list.OnUnselected = func(widget.ListItemID) {
		rl.selectedIdx = -1
		rl.updateButtons()
	}

	addButton := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if rl.config.OnAdd != nil {
			rl.config.OnAdd()
		}
	})
	rl.editButton = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), rl.EditSelected)
	rl.removeButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), rl.RemoveSelected)
	if config.OnAdd == nil {
		addButton.Hide()
	}
	if config.OnEdit == nil {
		rl.editButton.Hide()
	}
	rl.updateButtons()

	emptyLabel := widget.NewLabel(config.EmptyText)
	emptyLabel.Importance = widget.LowImportance

	listScroll := container.NewScroll(rl.list)
	minHeight := config.MinHeight
	if minHeight == 0 {
		minHeight = 150
	}
	listScroll.SetMinSize(fyne.NewSize(0, minHeight))

	listWithBorder := container.NewBorder(
		widget.NewSeparator(),
		widget.NewSeparator(),
		nil,
		nil,
		container.NewStack(listScroll, container.NewCenter(emptyLabel)),
	)

	controls := container.NewHBox(addButton, rl.editButton, rl.removeButton)
	rl.emptyLabel = emptyLabel
	rl.syncEmpty()

	return rl, container.NewVBox(listWithBorder, controls)
}

func (rl *RecordList[T]) render(i int) string {
	if rl.config.Render == nil {
		return ""
	}
	return rl.config.Render(rl.data[i])
}

func (rl *RecordList[T]) updateButtons() {
	if rl.selectedIdx >= 0 && rl.selectedIdx < len(rl.data) {
		rl.editButton.Enable()
		rl.removeButton.Enable()
		return
	}
	rl.editButton.Disable()
	rl.removeButton.Disable()
}

func (rl *RecordList[T]) syncEmpty() {
	if len(rl.data) == 0 && rl.config.EmptyText != "" {
		rl.emptyLabel.Show()
		return
	}
	rl.emptyLabel.Hide()
}

// Len returns the number of records shown
func (rl *RecordList[T]) Len() int {
	return len(rl.data)
}

// Selected returns the selected index or -1
func (rl *RecordList[T]) Selected() int {
	return rl.selectedIdx
}

// Select selects the record at idx
func (rl *RecordList[T]) Select(idx int) {
	rl.list.Select(idx)
}

// SetData replaces the records and clears the selection
func (rl *RecordList[T]) SetData(data []T) {
	rl.data = data
	rl.list.UnselectAll()
	rl.selectedIdx = -1
	rl.updateButtons()
	rl.syncEmpty()
	rl.list.Refresh()
}

// EditSelected calls OnEdit for the current selection
func (rl *RecordList[T]) EditSelected() {
	if rl.selectedIdx < 0 || rl.selectedIdx >= len(rl.data) || rl.config.OnEdit == nil {
		return
	}
	rl.config.OnEdit(rl.selectedIdx)
}

// RemoveSelected calls OnRemove for the current selection. The caller is
// expected to push the new records through SetData.
func (rl *RecordList[T]) RemoveSelected() {
	if rl.selectedIdx < 0 || rl.selectedIdx >= len(rl.data) || rl.config.OnRemove == nil {
		return
	}
	idx := rl.selectedIdx
	rl.list.UnselectAll()
	rl.selectedIdx = -1
	rl.updateButtons()
	rl.config.OnRemove(idx)
}
