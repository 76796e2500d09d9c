package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	panelWidth   = 220
	buttonWidth  = 97
	buttonHeight = 24
)

// controlPanel is the on-screen shape selector and scale control.
type controlPanel struct {
	ui    *ebitenui.UI
	panel *widget.Container
	shape *widget.Text
	scale *widget.Text
}

// newControlPanel builds a panel anchored to the top right with buttons that
// drive the same actions as the keyboard shortcuts.
func newControlPanel(v *Viewer) *controlPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(colornames.Darkslategray)
	btnPressedImg := imageui.NewNineSliceColor(colornames.Slategray)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: colornames.White}

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(buttonWidth, buttonHeight)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}
	row := func(buttons ...*widget.Button) *widget.Container {
		c := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
			widget.ContainerOpts.WidgetOpts(center),
		)
		for _, b := range buttons {
			c.AddChild(b)
		}
		return c
	}

	p := &controlPanel{}
	p.shape = widget.NewText(
		widget.TextOpts.Text("-", &face, colornames.White),
		widget.TextOpts.WidgetOpts(center),
	)
	p.scale = widget.NewText(
		widget.TextOpts.Text("-", &face, colornames.Lightgray),
		widget.TextOpts.WidgetOpts(center),
	)

	p.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	p.panel.AddChild(p.shape)
	p.panel.AddChild(row(
		button("< Prev", func() { v.selectShape(-1) }),
		button("Next >", func() { v.selectShape(1) }),
	))
	p.panel.AddChild(p.scale)
	p.panel.AddChild(row(
		button("Scale -", func() { v.adjustScale(-scaleStep) }),
		button("Scale +", func() { v.adjustScale(scaleStep) }),
	))
	p.panel.AddChild(row(
		button("Reload", v.reload),
		button("Clear", v.world.Clear),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(p.panel)

	p.ui = &ebitenui.UI{Container: root}
	return p
}

func (p *controlPanel) Update(v *Viewer) {
	p.shape.Label = v.shapeLabel()
	p.scale.Label = v.scaleLabel()
	p.ui.Update()
}

// Contains reports whether a screen point falls on the panel, so clicks on it
// do not spawn bodies.
func (p *controlPanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.panel.GetWidget().Rect)
}
