package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/tilecanvas/engine"
)

var brushNames = []string{"Random", "Fixed", "Erase", "Clone", "Pattern", "Draw"}

func buildToolBar(
	theme *widget.Theme,
	fontFace *text.Face,
	sourceNames []string,
	onBrushSelected func(kind engine.BrushKind),
	onSourceSelected func(index int),
	onSourceFavorite func(index int),
	initialBrush engine.BrushKind,
) (*widget.Container, *ToolBar) {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	var brushButtons []*widget.Button
	for _, name := range brushNames {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(name, fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 40),
			),
		)
		brushButtons = append(brushButtons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(brushButtons))
	for _, b := range brushButtons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onBrushSelected == nil {
				return
			}
			for idx, b := range brushButtons {
				if args.Active == b {
					onBrushSelected(engine.BrushKind(idx))
					return
				}
			}
		}),
	)

	// One plain button per palette source; clicking one selects it for the
	// fixed brush.
	for i, name := range sourceNames {
		srcIndex := i
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(displayName(name), fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(40, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if ebiten.IsKeyPressed(ebiten.KeyControl) {
					if onSourceFavorite != nil {
						onSourceFavorite(srcIndex)
					}
					return
				}
				if onSourceSelected != nil {
					onSourceSelected(srcIndex)
				}
			}),
		)
		toolbar.AddChild(btn)
	}

	if idx := int(initialBrush); idx >= 0 && idx < len(brushButtons) {
		group.SetActive(brushButtons[idx])
	}

	return toolbar, &ToolBar{group: group, buttons: brushButtons}
}
