package renderer

import "image/color"

// Color palette shared by the backends
var (
	ColorBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	ColorPanel      = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	ColorBorder     = color.RGBA{80, 80, 100, 255}   // Panel border
	ColorText       = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	ColorSubtle     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	ColorAction     = color.RGBA{180, 150, 250, 255} // Speaker names, titles
	ColorItem       = color.RGBA{220, 170, 255, 255} // Bright purple

	ColorSprite      = color.RGBA{0, 255, 0, 255}     // Bright green
	ColorCamera      = color.RGBA{255, 255, 255, 255} // The sprite the camera follows
	ColorPhysical    = color.RGBA{255, 150, 255, 255} // Bright pink
	ColorTreasure    = color.RGBA{255, 200, 100, 255} // Orange
	ColorTreasureOff = color.RGBA{120, 120, 140, 255} // Opened treasure
	ColorSavePoint   = color.RGBA{100, 150, 255, 255} // Bright blue

	ColorBlocked = color.RGBA{255, 80, 80, 255}  // Debug grid
	ColorStamina = color.RGBA{0, 220, 0, 255}    // Stamina left
	ColorWall    = color.RGBA{60, 60, 80, 255}   // Minimap walls
	ColorMarker  = color.RGBA{255, 255, 0, 255}  // Minimap location marker
	ColorFloor   = color.RGBA{100, 100, 120, 255} // Minimap floor
)

// tileColors gives every tile index a color until real tilesets exist
var tileColors = []color.RGBA{
	{46, 82, 46, 255},    // grass
	{58, 96, 52, 255},    // tall grass
	{70, 70, 80, 255},    // stone
	{40, 60, 110, 255},   // water
	{120, 100, 70, 255},  // road
	{90, 70, 50, 255},    // planks
	{150, 150, 160, 255}, // wall
	{60, 40, 30, 255},    // roof
	{30, 70, 30, 255},    // canopy
}

// TileColor returns the color a tile index is drawn with
func TileColor(tile int) color.RGBA {
	if tile < 0 {
		return ColorBackground
	}
	return tileColors[tile%len(tileColors)]
}
