package generator

import (
	"math/rand"

	"darkvale/pkg/game/config"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() tile {
	return tile{r.y + r.height/2, r.x + r.width/2}
}

// Constants for BSP generation, in tiles
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// Generate creates a map of rooms joined by L-shaped corridors
func (g *BSPGenerator) Generate(rng *rand.Rand, tilesX, tilesY int) *config.MapData {
	grid := newTileGrid(tilesX, tilesY)

	// Leave the outer ring of tiles for the perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  tilesX - 2,
		height: tilesY - 2,
	}
	splitBSP(rng, root, minNodeSize)
	createRooms(rng, root)
	carveRooms(grid, root)
	connectRooms(rng, grid, root)

	rooms := collectRooms(root)
	var start tile
	if len(rooms) > 0 {
		start = rooms[rng.Intn(len(rooms))].center()
	} else {
		// Fallback to center
		start = tile{tilesY / 2, tilesX / 2}
		grid.carve(start.row, start.col, false)
	}

	// One walker in the middle of every other room
	var spots []tile
	for _, r := range rooms {
		c := r.center()
		spots = append(spots, tile{c.row + 1, c.col + 1})
	}

	md := grid.mapData("Generated Vale", g.Name())
	populate(md, grid, rng, start, spots)
	return md
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false // Split vertically
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true // Split horizontally
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}
	if node.width < minRoomSize+roomPadding || node.height < minRoomSize+roomPadding {
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth),
		y:      node.y + rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms opens the room tiles
func carveRooms(grid *tileGrid, node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				grid.carve(row, col, false)
			}
		}
	}

	if node.left != nil {
		carveRooms(grid, node.left)
	}
	if node.right != nil {
		carveRooms(grid, node.right)
	}
}

// connectRooms connects a room of each subtree with an L-shaped corridor
func connectRooms(rng *rand.Rand, grid *tileGrid, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)
	if leftRoom != nil && rightRoom != nil {
		from, to := leftRoom.center(), rightRoom.center()
		if rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			carveCorridorHorizontal(grid, from.row, from.col, to.col)
			carveCorridorVertical(grid, to.col, from.row, to.row)
		} else {
			// Vertical first, then horizontal
			carveCorridorVertical(grid, from.col, from.row, to.row)
			carveCorridorHorizontal(grid, to.row, from.col, to.col)
		}
	}

	connectRooms(rng, grid, node.left)
	connectRooms(rng, grid, node.right)
}

func carveCorridorHorizontal(grid *tileGrid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		grid.carve(row, col, true)
	}
}

func carveCorridorVertical(grid *tileGrid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		grid.carve(row, col, true)
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom
	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}
