package game

import "image/color"

var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	borderColor     = color.RGBA{0, 0, 0, 255}
	textColor       = color.RGBA{0, 0, 0, 255}
	alertColor      = color.RGBA{204, 24, 24, 255}
	goldColor       = color.RGBA{255, 204, 0, 255}

	plainCellColor   = color.RGBA{190, 190, 190, 255}
	rewardCellColor  = color.RGBA{116, 195, 101, 255}
	penaltyCellColor = color.RGBA{214, 108, 96, 255}

	restartButtonColor = color.RGBA{96, 195, 96, 255}
	effectButtonColor  = color.RGBA{255, 204, 0, 255}
	rollButtonColor    = color.RGBA{150, 200, 255, 255}

	homeColors = []color.RGBA{
		{255, 140, 140, 255},
		{140, 170, 255, 255},
		{255, 220, 120, 255},
		{185, 140, 220, 255},
	}

	playerColors = []color.RGBA{
		{220, 30, 30, 255},
		{30, 60, 220, 255},
		{220, 170, 20, 255},
		{130, 40, 180, 255},
	}
)
