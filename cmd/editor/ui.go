package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/tilecanvas/engine"
)

// ToolBar keeps the brush radio group so the selection can be driven from
// hotkeys as well as clicks.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

// SetActive moves the radio selection to the given brush kind.
func (t *ToolBar) SetActive(kind engine.BrushKind) {
	if idx := int(kind); idx >= 0 && idx < len(t.buttons) {
		t.group.SetActive(t.buttons[idx])
	}
}

// BuildEditorUI assembles the toolbar: one radio button per brush kind and
// one button per palette source for the fixed brush. Ctrl+click on a source
// button toggles it in the favorites sub-palette instead of selecting it.
func BuildEditorUI(
	sourceNames []string,
	onBrushSelected func(kind engine.BrushKind),
	onSourceSelected func(index int),
	onSourceFavorite func(index int),
	initialBrush engine.BrushKind,
) (*ebitenui.UI, *ToolBar) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbar, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, sourceNames, onBrushSelected, onSourceSelected, onSourceFavorite, initialBrush)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(toolbar)
	ui.Container = root

	return ui, toolBar
}
