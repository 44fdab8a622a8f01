package glimpse

// WheelDelta is the number of wheel units reported for one notch of a
// classic mouse wheel.
const WheelDelta = 120

// Scale factors from native scroll deltas to wheel units. The values are
// part of the observable behaviour of each backend and must stay as they
// are, even where two layers report comparable deltas differently.
const (
	// glfw reports fractional offsets, 1.0 per notch
	glfwWheelScale = 120

	// SDL reports whole notches
	sdlWheelScale = 120

	// ebiten passes the glfw offsets through on desktop
	ebitenWheelScale = 120

	// Win32 WM_MOUSEWHEEL already reports wheel units
	win32WheelScale = 1

	// Cocoa reports lines for classic wheels and points for precise
	// (trackpad) scrolling. Horizontal precise deltas use a smaller factor.
	cocoaLineScale              = 120
	cocoaPreciseScale           = 0.1 * 120
	cocoaPreciseHorizontalScale = 0.09 * 120

	// DOM WheelEvent.deltaMode 0 (pixels), 1 (lines) and 2 (pages)
	domPixelScale = 1.2
	domLineScale  = 120
	domPageScale  = 1200
)

// CocoaScroll converts the scrolling deltas of a Cocoa scroll wheel event
// into a MouseWheel event. Cocoa reports positive deltas when scrolling up.
func CocoaScroll(deltaX, deltaY float64, precise bool) MouseWheel {
	if precise {
		return MouseWheel{
			DeltaX: deltaX * cocoaPreciseHorizontalScale,
			DeltaY: deltaY * cocoaPreciseScale,
		}
	}

	return MouseWheel{
		DeltaX: deltaX * cocoaLineScale,
		DeltaY: deltaY * cocoaLineScale,
	}
}

// Win32Scroll converts the signed delta of WM_MOUSEWHEEL or WM_MOUSEHWHEEL.
func Win32Scroll(delta int16, horizontal bool) MouseWheel {
	value := float64(delta) * win32WheelScale
	if horizontal {
		return MouseWheel{DeltaX: value}
	}

	return MouseWheel{DeltaY: value}
}

// DOMScroll converts a DOM WheelEvent. The DOM reports positive deltaY when
// scrolling down, so the sign is flipped to match the other layers.
func DOMScroll(deltaX, deltaY float64, deltaMode int) MouseWheel {
	scale := float64(domPixelScale)
	switch deltaMode {
	case 1:
		scale = domLineScale
	case 2:
		scale = domPageScale
	}

	return MouseWheel{
		DeltaX: deltaX * scale,
		DeltaY: -deltaY * scale,
	}
}
