package partsrun

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD layout. The panel sits directly below the map.
const (
	HUDHeight     = 120
	HUDLogEntries = 5
	hudFontSize   = 14
	hudLineHeight = 18
	hudPadding    = 12
	hudLogX       = 360
)

var (
	colorHUDPanel = Hex(0x081021)
	colorHUDText  = Hex(0xe2e8f0)
	colorHUDDim   = Hex(0x94a3b8)
)

// HUD mirrors score, found count, total and the newest log entries into text.
// It only changes when Sync is called, so the score shown can trail the live
// score between tags.
type HUD struct {
	face *text.GoTextFace

	Score string
	Found string
	Total string
	Log   []string
}

// NewHUD parses the embedded Go Regular face.
func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("partsrun: failed to parse HUD font: %w", err)
	}
	return &HUD{
		face: &text.GoTextFace{Source: src, Size: hudFontSize},
	}, nil
}

// Sync copies the displayable fields out of s.
func (h *HUD) Sync(s *GameState, total int) {
	h.Score = strconv.FormatFloat(s.Score, 'f', 0, 64)
	h.Found = strconv.Itoa(s.FoundCount)
	h.Total = strconv.Itoa(total)
	recent := s.RecentLog(HUDLogEntries)
	h.Log = append(h.Log[:0], recent...)
}

// Draw paints the panel below the map.
func (h *HUD) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, MapHeight, MapWidth, HUDHeight, colorHUDPanel.RGBA(), false)
	if h.face == nil {
		return
	}
	y := float64(MapHeight + hudPadding)
	h.drawLine(screen, "Score: "+h.Score, hudPadding, y, colorHUDText)
	h.drawLine(screen, "Parts found: "+h.Found+" / "+h.Total, hudPadding, y+hudLineHeight, colorHUDText)

	if len(h.Log) == 0 {
		h.drawLine(screen, "Walk near a part to tag it.", hudLogX, y, colorHUDDim)
		return
	}
	for i, entry := range h.Log {
		h.drawLine(screen, entry, hudLogX, y+float64(i*hudLineHeight), colorHUDText)
	}
}

func (h *HUD) drawLine(screen *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(screen, s, h.face, op)
}
