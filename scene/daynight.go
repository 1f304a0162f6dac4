package scene

import (
	"github.com/solarlune/stadium3d/colors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DayNight fades the scene's Palette between day and night. The fade is driven by Update(), so it advances with
// the game loop rather than wall-clock time.
type DayNight struct {
	Duration float32 // Seconds a full fade takes

	day, night colors.Palette
	toNight    bool
	tween      *gween.Tween
	amount     float32 // 0 is full day, 1 is full night
}

// NewDayNight returns a DayNight that starts at full day and fades over the given number of seconds.
func NewDayNight(duration float32) *DayNight {
	return &DayNight{
		Duration: duration,
		day:      colors.Day(),
		night:    colors.Night(),
	}
}

// Toggle starts fading towards whichever of day or night the scene isn't heading to already. Toggling mid-fade
// turns around from wherever the fade currently is.
func (dn *DayNight) Toggle() {

	dn.toNight = !dn.toNight

	target := float32(0)
	if dn.toNight {
		target = 1
	}

	// Scale the duration so that turning around halfway takes half as long.
	distance := target - dn.amount
	if distance < 0 {
		distance = -distance
	}

	if distance == 0 || dn.Duration <= 0 {
		dn.amount = target
		dn.tween = nil
		return
	}

	dn.tween = gween.New(dn.amount, target, dn.Duration*distance, ease.InOutQuad)

}

// Night returns true if the scene is at, or heading towards, night.
func (dn *DayNight) Night() bool {
	return dn.toNight
}

// Update advances the fade by dt seconds.
func (dn *DayNight) Update(dt float32) {

	if dn.tween == nil {
		return
	}

	current, finished := dn.tween.Update(dt)
	dn.amount = current

	if finished {
		dn.tween = nil
	}

}

// Fading returns true while a fade is in progress.
func (dn *DayNight) Fading() bool {
	return dn.tween != nil
}

// Amount returns how far towards night the scene is, from 0 (day) to 1 (night).
func (dn *DayNight) Amount() float32 {
	return dn.amount
}

// Palette returns the current blend of the day and night palettes.
func (dn *DayNight) Palette() colors.Palette {
	return dn.day.Lerp(dn.night, dn.amount)
}
