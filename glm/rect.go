package glm

// Rect is an axis aligned rectangle given by its top left corner and its size.
// Screen coordinates grow to the right and downwards.
type Rect[T numeric] struct {
	X, Y          T
	Width, Height T
}

func RectFromPosSize[T numeric](pos, size Vec2[T]) Rect[T] {
	return Rect[T]{X: pos[0], Y: pos[1], Width: size[0], Height: size[1]}
}

func (r Rect[T]) Pos() Vec2[T] {
	return Vec2[T]{r.X, r.Y}
}

func (r Rect[T]) Size() Vec2[T] {
	return Vec2[T]{r.Width, r.Height}
}

func (r Rect[T]) Right() T {
	return r.X + r.Width
}

func (r Rect[T]) Bottom() T {
	return r.Y + r.Height
}

func (r Rect[T]) Center() Vec2[T] {
	return Vec2[T]{r.X + r.Width/2, r.Y + r.Height/2}
}

func (r Rect[T]) Contains(point Vec2[T]) bool {
	return point[0] >= r.X && point[1] >= r.Y && point[0] < r.Right() && point[1] < r.Bottom()
}

// Intersect returns the overlapping area of both rectangles. The result
// has a zero size if the rectangles do not overlap.
func (r Rect[T]) Intersect(other Rect[T]) Rect[T] {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect[T]{X: x0, Y: y0}
	}

	return Rect[T]{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// CenterIn returns a rectangle of the given size centered within r.
func (r Rect[T]) CenterIn(size Vec2[T]) Rect[T] {
	return Rect[T]{
		X:      r.X + (r.Width-size[0])/2,
		Y:      r.Y + (r.Height-size[1])/2,
		Width:  size[0],
		Height: size[1],
	}
}

func (r Rect[T]) XYWH() (T, T, T, T) {
	return r.X, r.Y, r.Width, r.Height
}
