package render

import "github.com/lixenwraith/gravsim/core"

// UI colors
var (
	RgbBackground   = core.RGB{R: 16, G: 16, B: 24}
	RgbExtent       = core.RGB{R: 60, G: 60, B: 90}
	RgbExtentZoom   = core.RGB{R: 40, G: 90, B: 70}
	RgbStatusFg     = core.RGB{R: 200, G: 200, B: 210}
	RgbStatusBg     = core.RGB{R: 30, G: 30, B: 46}
	RgbStatusAccent = core.RGB{R: 255, G: 200, B: 90}
	RgbWarning      = core.RGB{R: 255, G: 110, B: 110}
	RgbPreview      = core.RGB{R: 230, G: 230, B: 230}
	RgbTrackMarker  = core.RGB{R: 255, G: 255, B: 255}
)
