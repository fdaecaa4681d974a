package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/stardrive/ecs"
	"github.com/milk9111/stardrive/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// HUD is the top-left readout of speed and ground position.
type HUD struct {
	ui    *ebitenui.UI
	speed *widget.Text
	x     *widget.Text
	z     *widget.Text
}

func NewHUD() *HUD {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	newLine := func() *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, colornames.White),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
	}

	h := &HUD{speed: newLine(), x: newLine(), z: newLine()}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 0x80})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(h.speed)
	panel.AddChild(h.x)
	panel.AddChild(h.z)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	h.Set(component.HUD{})
	return h
}

func (h *HUD) Set(values component.HUD) {
	h.speed.Label = fmt.Sprintf("Speed: %d km/h", values.Speed)
	h.x.Label = fmt.Sprintf("X: %d", values.X)
	h.z.Label = fmt.Sprintf("Z: %d", values.Z)
}

// Update copies the HUD component written by the simulation into the labels.
func (h *HUD) Update(w *ecs.World) {
	if e, ok := ecs.First(w, component.HUDComponent.Kind()); ok {
		if values, ok := ecs.Get(w, e, component.HUDComponent.Kind()); ok {
			h.Set(*values)
		}
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
