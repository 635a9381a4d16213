package engine

// FramesPerSecond is the sprite animation rate.
const FramesPerSecond = 8

// Palette names the color role of a sprite frame.
type Palette uint8

const (
	PalettePlayer Palette = iota
	PaletteGuard
	PaletteGuardGold
)

// Frame is a static sprite frame: two terminal glyphs wide.
type Frame struct {
	Glyphs  [2]rune
	Palette Palette
}

type frameKey struct {
	kind Kind
	anim AnimState
}

var frameTable = map[frameKey][]Frame{
	{KindPlayer, AnimStanding}: {{[2]rune{'◖', '◗'}, PalettePlayer}},
	{KindPlayer, AnimRunning}: {
		{[2]rune{'◖', '▸'}, PalettePlayer},
		{[2]rune{'◂', '◗'}, PalettePlayer},
	},
	{KindPlayer, AnimClimbing}: {
		{[2]rune{'╟', '◗'}, PalettePlayer},
		{[2]rune{'◖', '╢'}, PalettePlayer},
	},
	{KindPlayer, AnimHanging}: {
		{[2]rune{'╤', '◗'}, PalettePlayer},
		{[2]rune{'◖', '╤'}, PalettePlayer},
	},
	{KindPlayer, AnimFalling}: {{[2]rune{'▾', '▾'}, PalettePlayer}},
	{KindPlayer, AnimDigging}: {
		{[2]rune{'◖', '╱'}, PalettePlayer},
		{[2]rune{'◖', '╲'}, PalettePlayer},
	},

	{KindGuard, AnimStanding}: {{[2]rune{'▛', '▜'}, PaletteGuard}},
	{KindGuard, AnimRunning}: {
		{[2]rune{'▛', '▞'}, PaletteGuard},
		{[2]rune{'▚', '▜'}, PaletteGuard},
	},
	{KindGuard, AnimClimbing}: {
		{[2]rune{'╟', '▜'}, PaletteGuard},
		{[2]rune{'▛', '╢'}, PaletteGuard},
	},
	{KindGuard, AnimHanging}: {
		{[2]rune{'╤', '▜'}, PaletteGuard},
		{[2]rune{'▛', '╤'}, PaletteGuard},
	},
	{KindGuard, AnimFalling}: {{[2]rune{'▼', '▼'}, PaletteGuard}},
}

var fallbackFrame = Frame{Glyphs: [2]rune{'?', '?'}, Palette: PaletteGuard}

// FrameIndex converts the animation clock into a frame counter.
func FrameIndex(animTime float64) int {
	if animTime < 0 {
		return 0
	}
	return int(animTime * FramesPerSecond)
}

// FrameFor returns the sprite frame for an entity kind in an animation
// state. frameIndex wraps around the number of frames available.
func FrameFor(kind Kind, anim AnimState, frameIndex int) Frame {
	frames, ok := frameTable[frameKey{kind, anim}]
	if !ok {
		frames, ok = frameTable[frameKey{kind, AnimStanding}]
		if !ok {
			return fallbackFrame
		}
	}
	if frameIndex < 0 {
		frameIndex = -frameIndex
	}
	return frames[frameIndex%len(frames)]
}

// GuardFrame is FrameFor for a guard, switching palette when it carries gold.
func GuardFrame(g *Guard, frameIndex int) Frame {
	f := FrameFor(KindGuard, g.Anim, frameIndex)
	if g.CarriesGold {
		f.Palette = PaletteGuardGold
	}
	return f
}
