package indicator

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/queue"

	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/global"
)

// Horizontal nudges applied to a new element that lands exactly on an active one
const (
	DamageNudge = 1.0
	OtherNudge  = 15.0
)

// MissStyle is the text style of the "Miss" indicator
var MissStyle = video.NewTextStyle("text24", 24, video.White)

// IconSource looks up status icons. A nil result is allowed and only produces a warning.
type IconSource interface {
	StatusIcon(s global.Status, i global.Intensity) *video.Image
}

// Supervisor owns every indicator of a mode, from the wait queue to the end of its display
type Supervisor struct {
	wait    *queue.Queue[*Element]
	waiting int
	active  []*Element

	icons    IconSource
	rng      *rand.Rand
	duration int
}

// NewSupervisor creates an empty supervisor. rng may be nil to use the global source.
func NewSupervisor(icons IconSource, rng *rand.Rand) *Supervisor {
	return &Supervisor{
		wait:     queue.New[*Element](),
		icons:    icons,
		rng:      rng,
		duration: TotalTime,
	}
}

// SetDuration changes the display time of indicators added afterwards
func (s *Supervisor) SetDuration(ms int) {
	s.duration = ms
}

func (s *Supervisor) push(e *Element) {
	if s.duration != TotalTime {
		e.SetDuration(s.duration)
	}
	s.wait.Enqueue(e)
	s.waiting++
}

// AddDamageIndicator queues a bouncing damage number. Zero damage shows nothing.
func (s *Supervisor) AddDamageIndicator(x, y float64, amount uint, style video.TextStyle) {
	if amount == 0 {
		return
	}
	s.push(NewText(x, y, strconv.FormatUint(uint64(amount), 10), style, KindDamage))
}

// AddHealingIndicator queues a rising heal number. Zero healing shows nothing.
func (s *Supervisor) AddHealingIndicator(x, y float64, amount uint, style video.TextStyle) {
	if amount == 0 {
		return
	}
	s.push(NewText(x, y, strconv.FormatUint(uint64(amount), 10), style, KindHeal))
}

// AddMissIndicator queues the translated "Miss" text
func (s *Supervisor) AddMissIndicator(x, y float64) {
	s.push(NewText(x, y, gotext.Get("MISS"), MissStyle, KindText))
}

// AddStatusIndicator queues a status icon, or a crossfade between two icons when the intensity changed
func (s *Supervisor) AddStatusIndicator(x, y float64, status global.Status, oldIntensity, newIntensity global.Intensity) {
	if oldIntensity == newIntensity {
		img := s.statusIcon(status, newIntensity)
		if img == nil {
			logging.Warnf("Indicator", "invalid indicator image for status %s", status)
		}
		s.push(NewImage(x, y, img, KindPositiveStatus))
		return
	}

	first := s.statusIcon(status, oldIntensity)
	second := s.statusIcon(status, newIntensity)
	if first == nil {
		logging.Warnf("Indicator", "invalid first indicator image for status %s", status)
	}
	if second == nil {
		logging.Warnf("Indicator", "invalid second indicator image for status %s", status)
	}

	kind := KindNegativeStatus
	if oldIntensity <= newIntensity {
		kind = KindPositiveStatus
	}
	s.push(NewBlendedImage(x, y, first, second, kind))
}

func (s *Supervisor) statusIcon(status global.Status, i global.Intensity) *video.Image {
	if s.icons == nil {
		return nil
	}
	return s.icons.StatusIcon(status, i)
}

// AddItemIndicator queues the icon of an item
func (s *Supervisor) AddItemIndicator(x, y float64, item *global.Item) {
	var icon *video.Image
	if item != nil {
		icon = item.Icon
	}
	if icon == nil {
		logging.Warnf("Indicator", "invalid indicator image for item")
	}
	s.push(NewImage(x, y, icon, KindItem))
}

// Update advances the active indicators, drops finished ones and starts the waiting ones
func (s *Supervisor) Update(elapsedMs int) {
	for _, e := range s.active {
		e.Update(elapsedMs)
	}

	// Elements share one duration and start in order, so expiry runs front to back
	for len(s.active) > 0 && s.active[0].IsExpired() {
		s.active[0] = nil
		s.active = s.active[1:]
	}

	promoted := false
	for !s.wait.Empty() {
		e := s.wait.Dequeue()
		s.waiting--

		e.Start(s.rng)
		for s.fixOverlap(e) {
		}

		s.active = append(s.active, e)
		promoted = true
	}

	if promoted {
		sort.SliceStable(s.active, func(i, j int) bool {
			return s.active[i].xOrigin > s.active[j].xOrigin
		})
	}
}

// fixOverlap nudges e once if an active element has exactly the same origin
func (s *Supervisor) fixOverlap(e *Element) bool {
	for _, other := range s.active {
		if other.xOrigin != e.xOrigin || other.yOrigin != e.yOrigin {
			continue
		}
		if e.kind == KindDamage {
			e.xOrigin += DamageNudge
		} else {
			e.xOrigin += OtherNudge
		}
		return true
	}
	return false
}

// Draw draws the active indicators in their display order
func (s *Supervisor) Draw(c video.Canvas) {
	for _, e := range s.active {
		e.Draw(c)
	}
}

// Elements returns the active indicators in draw order
func (s *Supervisor) Elements() []*Element {
	out := make([]*Element, len(s.active))
	copy(out, s.active)
	return out
}

// Len returns the number of active indicators
func (s *Supervisor) Len() int {
	return len(s.active)
}

// WaitingLen returns the number of indicators not started yet
func (s *Supervisor) WaitingLen() int {
	return s.waiting
}

// Clear drops every indicator
func (s *Supervisor) Clear() {
	s.wait = queue.New[*Element]()
	s.waiting = 0
	s.active = nil
}
