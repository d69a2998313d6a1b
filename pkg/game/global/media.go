package global

import (
	"fmt"

	"darkvale/pkg/engine/video"
)

// Icon sizes in standard resolution pixels
const (
	StatusIconSize = 25
	ItemIconSize   = 32
)

// Item is an inventory object that can be found in treasures
type Item struct {
	ID    int
	Name  string
	Count int
	Icon  *video.Image
}

// NewItem creates an item with an icon handle named after its id
func NewItem(id int, name string, count int) *Item {
	return &Item{
		ID:    id,
		Name:  name,
		Count: count,
		Icon:  video.NewImage(fmt.Sprintf("item_%d", id), ItemIconSize, ItemIconSize),
	}
}

// Media is the shared image lookup. Backends resolve the handle names to real images.
type Media struct {
	statusIcons map[Status]map[Intensity]*video.Image
}

// NewMedia builds the status icon table for every valid status and non-neutral intensity
func NewMedia() *Media {
	m := &Media{statusIcons: make(map[Status]map[Intensity]*video.Image)}
	for _, s := range AllStatuses() {
		byIntensity := make(map[Intensity]*video.Image)
		for i := IntensityNegExtreme; i <= IntensityPosExtreme; i++ {
			byIntensity[i] = video.NewImage(StatusIconName(s, i), StatusIconSize, StatusIconSize)
		}
		m.statusIcons[s] = byIntensity
	}
	return m
}

// StatusIconName returns the handle name used for a status icon
func StatusIconName(s Status, i Intensity) string {
	return fmt.Sprintf("status_%s_%s", s, i)
}

// StatusIcon returns the icon for a status at a given intensity, or nil when there is none
func (m *Media) StatusIcon(s Status, i Intensity) *video.Image {
	if m == nil {
		return nil
	}
	byIntensity, ok := m.statusIcons[s]
	if !ok {
		return nil
	}
	return byIntensity[i]
}
