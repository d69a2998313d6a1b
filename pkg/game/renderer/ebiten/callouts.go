package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkvale/pkg/engine/video"
)

// AddCallout adds a floating notice. A durationMs of 0 keeps it until newer callouts push it out.
// Only the newest maxCallouts are kept.
func (e *EbitenRenderer) AddCallout(message string, col color.Color, durationMs int) {
	now := e.now().UnixMilli()
	var expiresAt int64
	if durationMs > 0 {
		expiresAt = now + int64(durationMs)
	}

	e.callouts = append(e.callouts, Callout{
		Message:   message,
		Color:     col,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	})
	if len(e.callouts) > maxCallouts {
		e.callouts = e.callouts[len(e.callouts)-maxCallouts:]
	}
}

// watchMessages turns every message added to the session log since the last frame into a callout
func (e *EbitenRenderer) watchMessages() {
	added := e.sess.MessagesAdded()
	n := min(added-e.seenMessages, len(e.sess.Messages))
	e.seenMessages = added
	if n <= 0 {
		return
	}
	for _, msg := range e.sess.Messages[len(e.sess.Messages)-n:] {
		e.AddCallout(msg, ColorCalloutInfo, calloutDuration)
	}
}

// expireCallouts drops callouts past their expiry
func (e *EbitenRenderer) expireCallouts() {
	now := e.now().UnixMilli()
	kept := e.callouts[:0]
	for _, c := range e.callouts {
		if c.ExpiresAt == 0 || c.ExpiresAt > now {
			kept = append(kept, c)
		}
	}
	e.callouts = kept
}

// calloutAnimation returns the fade and the vertical slide of a callout at a time.
// ok is false once the callout has expired.
func calloutAnimation(c Callout, now int64) (alpha float64, slideOffsetY float32, ok bool) {
	age := now - c.CreatedAt
	alpha = 1.0

	// Entrance animation (fade in from black + slide in from top)
	if age < entranceDuration {
		progress := easeInOut(float64(max(age, 0)) / entranceDuration)
		alpha = progress
		slideOffsetY = float32(-20 * (1.0 - progress))
	}

	// Exit animation (fade out to black + slide out to bottom)
	if c.ExpiresAt > 0 {
		timeUntilExpiry := c.ExpiresAt - now
		if timeUntilExpiry <= 0 {
			return 0, 0, false
		}
		if timeUntilExpiry < exitDuration {
			progress := float64(timeUntilExpiry) / exitDuration
			alpha = progress
			slideOffsetY = float32(20 * (1.0 - progress))
		}
	}
	return alpha, slideOffsetY, true
}

// drawCallouts renders the callouts stacked under the top edge, newest at the bottom
func (e *EbitenRenderer) drawCallouts(screen *ebiten.Image) {
	if len(e.callouts) == 0 {
		return
	}

	face := e.getFontFace("sans", baseFontSize)
	const (
		padding             = 8
		spacing             = 6
		tooltipCornerRadius = 6
		tooltipBorderWidth  = 1
	)
	boxHeight := float32(face.Size + padding*2)
	now := e.now().UnixMilli()

	y := float32(16)
	for _, callout := range e.callouts {
		alpha, slideOffsetY, ok := calloutAnimation(callout, now)
		// Skip drawing if alpha is too low (avoid rendering artifacts)
		if !ok || alpha < 0.01 {
			continue
		}

		boxWidth := float32(getTextWidthWithFace(callout.Message, face) + padding*2)
		x := float32(video.StandardResWidth)/2 - boxWidth/2
		top := y + slideOffsetY

		bgColor := applyAlpha(colorCalloutBg, alpha)
		borderColor := applyAlpha(pulsingColor(callout.Color, now), alpha)
		drawRoundedRectWithShadow(screen, x, top, boxWidth, boxHeight, tooltipCornerRadius, tooltipBorderWidth, bgColor, borderColor, float32(alpha))

		// Accent bar on the left edge
		vector.DrawFilledRect(screen, x+2, top+4, 3, boxHeight-8, borderColor, false)

		drawColoredText(screen, callout.Message, float64(x+padding), float64(top+padding), applyAlpha(callout.Color, alpha), face)
		y += boxHeight + spacing
	}
}
