package pixel

import "image"

// Command is one paint operation: copy the atlas block starting at Sprite,
// sized like Rect, onto the logical buffer at Rect, blending with "over".
//
// Rect is in logical pixel coordinates with an inclusive Min and exclusive
// Max. A zero-area Rect is a producer bug; Render drops such commands.
// Tint, when not NoTint, recolors every atlas pixel that is not fully opaque
// (see blend.Tint).
type Command struct {
	Rect   image.Rectangle
	Sprite image.Point
	Tint   Color
}

// Sprite returns a command drawing the atlas block at src into dst.
func Sprite(dst image.Rectangle, src image.Point) Command {
	return Command{Rect: dst, Sprite: src}
}

// Tinted returns a command drawing the atlas block at src into dst with the
// given tint.
func Tinted(dst image.Rectangle, src image.Point, tint Color) Command {
	return Command{Rect: dst, Sprite: src, Tint: tint}
}

// Empty reports whether the command covers no pixels.
func (c Command) Empty() bool {
	return c.Rect.Empty()
}

// CommandList accumulates the commands of one frame in paint order.
// Zero-area commands are dropped on Add, so a list can be handed to
// FrameBuffer.Render as is.
//
// The zero value is ready to use. Reset keeps the backing storage, so a list
// reused every frame does not allocate in steady state.
type CommandList struct {
	cmds    []Command
	dropped int
}

// Add appends c unless it is empty. It reports whether c was kept.
func (l *CommandList) Add(c Command) bool {
	if c.Empty() {
		l.dropped++
		return false
	}
	l.cmds = append(l.cmds, c)
	return true
}

// Sprite appends an untinted sprite command.
func (l *CommandList) Sprite(dst image.Rectangle, src image.Point) bool {
	return l.Add(Sprite(dst, src))
}

// Tinted appends a tinted sprite command.
func (l *CommandList) Tinted(dst image.Rectangle, src image.Point, tint Color) bool {
	return l.Add(Tinted(dst, src, tint))
}

// Commands returns the accumulated commands. The slice is valid until the
// next Reset.
func (l *CommandList) Commands() []Command {
	return l.cmds
}

// Len returns the number of kept commands.
func (l *CommandList) Len() int {
	return len(l.cmds)
}

// Dropped returns how many empty commands were discarded since the last Reset.
func (l *CommandList) Dropped() int {
	return l.dropped
}

// Reset empties the list for the next frame.
func (l *CommandList) Reset() {
	l.cmds = l.cmds[:0]
	l.dropped = 0
}
