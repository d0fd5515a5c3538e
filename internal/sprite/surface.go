package sprite

// HiddenClass is the class tag that suppresses rendering of a surface.
const HiddenClass = "hd"

// Surface is the externally owned visual element an entity draws through.
// Coordinates are in surface cells relative to the container.
type Surface interface {
	// Size returns the rendered width and height of one frame.
	Size() (w, h int)

	// SetPosition moves the element's top-left corner.
	SetPosition(x, y float64)

	// SetBackgroundOffset shifts the sprite sheet behind the element;
	// frame n of a horizontal sheet sits at (-(n-1)*width, 0).
	SetBackgroundOffset(x, y int)

	// SetTransform sets the rotation in degrees, clockwise from vertical.
	SetTransform(rotationDeg float64)

	// SetStyle sets a named style property such as "color".
	SetStyle(name, value string)

	AddClass(name string)
	RemoveClass(name string)

	// SetText sets the debug overlay text.
	SetText(text string)
}

// Container creates surfaces. Mount creates a new element tagged with class.
type Container interface {
	Mount(class string) (Surface, error)
}
