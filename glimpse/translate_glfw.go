//go:build !js && !android && !ios

package glimpse

import "github.com/go-gl/glfw/v3.3/glfw"

var glfwToKey = map[glfw.Key]Key{
	glfw.KeySpace:        KeySpace,
	glfw.KeyApostrophe:   KeyOemQuotes,
	glfw.KeyComma:        KeyOemComma,
	glfw.KeyMinus:        KeyOemMinus,
	glfw.KeyPeriod:       KeyOemPeriod,
	glfw.KeySlash:        KeyOemQuestion,
	glfw.KeySemicolon:    KeyOemSemicolon,
	glfw.KeyEqual:        KeyOemPlus,
	glfw.KeyLeftBracket:  KeyOemOpenBrackets,
	glfw.KeyBackslash:    KeyOemPipe,
	glfw.KeyRightBracket: KeyOemCloseBrackets,
	glfw.KeyGraveAccent:  KeyOemTilde,
	glfw.KeyWorld1:       KeyOemBackslash,
	glfw.KeyWorld2:       KeyOem8,

	glfw.Key0: Key0,
	glfw.Key1: Key1,
	glfw.Key2: Key2,
	glfw.Key3: Key3,
	glfw.Key4: Key4,
	glfw.Key5: Key5,
	glfw.Key6: Key6,
	glfw.Key7: Key7,
	glfw.Key8: Key8,
	glfw.Key9: Key9,

	glfw.KeyA: KeyA,
	glfw.KeyB: KeyB,
	glfw.KeyC: KeyC,
	glfw.KeyD: KeyD,
	glfw.KeyE: KeyE,
	glfw.KeyF: KeyF,
	glfw.KeyG: KeyG,
	glfw.KeyH: KeyH,
	glfw.KeyI: KeyI,
	glfw.KeyJ: KeyJ,
	glfw.KeyK: KeyK,
	glfw.KeyL: KeyL,
	glfw.KeyM: KeyM,
	glfw.KeyN: KeyN,
	glfw.KeyO: KeyO,
	glfw.KeyP: KeyP,
	glfw.KeyQ: KeyQ,
	glfw.KeyR: KeyR,
	glfw.KeyS: KeyS,
	glfw.KeyT: KeyT,
	glfw.KeyU: KeyU,
	glfw.KeyV: KeyV,
	glfw.KeyW: KeyW,
	glfw.KeyX: KeyX,
	glfw.KeyY: KeyY,
	glfw.KeyZ: KeyZ,

	glfw.KeyEscape:      KeyEscape,
	glfw.KeyEnter:       KeyEnter,
	glfw.KeyTab:         KeyTab,
	glfw.KeyBackspace:   KeyBack,
	glfw.KeyInsert:      KeyInsert,
	glfw.KeyDelete:      KeyDelete,
	glfw.KeyRight:       KeyRight,
	glfw.KeyLeft:        KeyLeft,
	glfw.KeyDown:        KeyDown,
	glfw.KeyUp:          KeyUp,
	glfw.KeyPageUp:      KeyPageUp,
	glfw.KeyPageDown:    KeyPageDown,
	glfw.KeyHome:        KeyHome,
	glfw.KeyEnd:         KeyEnd,
	glfw.KeyCapsLock:    KeyCapsLock,
	glfw.KeyScrollLock:  KeyScroll,
	glfw.KeyNumLock:     KeyNumLock,
	glfw.KeyPrintScreen: KeyPrintScreen,
	glfw.KeyPause:       KeyPause,

	glfw.KeyF1:  KeyF1,
	glfw.KeyF2:  KeyF2,
	glfw.KeyF3:  KeyF3,
	glfw.KeyF4:  KeyF4,
	glfw.KeyF5:  KeyF5,
	glfw.KeyF6:  KeyF6,
	glfw.KeyF7:  KeyF7,
	glfw.KeyF8:  KeyF8,
	glfw.KeyF9:  KeyF9,
	glfw.KeyF10: KeyF10,
	glfw.KeyF11: KeyF11,
	glfw.KeyF12: KeyF12,
	glfw.KeyF13: KeyF13,
	glfw.KeyF14: KeyF14,
	glfw.KeyF15: KeyF15,
	glfw.KeyF16: KeyF16,
	glfw.KeyF17: KeyF17,
	glfw.KeyF18: KeyF18,
	glfw.KeyF19: KeyF19,
	glfw.KeyF20: KeyF20,
	glfw.KeyF21: KeyF21,
	glfw.KeyF22: KeyF22,
	glfw.KeyF23: KeyF23,
	glfw.KeyF24: KeyF24,

	glfw.KeyKP0:        KeyNumPad0,
	glfw.KeyKP1:        KeyNumPad1,
	glfw.KeyKP2:        KeyNumPad2,
	glfw.KeyKP3:        KeyNumPad3,
	glfw.KeyKP4:        KeyNumPad4,
	glfw.KeyKP5:        KeyNumPad5,
	glfw.KeyKP6:        KeyNumPad6,
	glfw.KeyKP7:        KeyNumPad7,
	glfw.KeyKP8:        KeyNumPad8,
	glfw.KeyKP9:        KeyNumPad9,
	glfw.KeyKPDecimal:  KeyDecimal,
	glfw.KeyKPDivide:   KeyDivide,
	glfw.KeyKPMultiply: KeyMultiply,
	glfw.KeyKPSubtract: KeySubtract,
	glfw.KeyKPAdd:      KeyAdd,
	glfw.KeyKPEnter:    KeyEnter,
	glfw.KeyKPEqual:    KeyOemPlus,

	glfw.KeyLeftShift:    KeyLeftShift,
	glfw.KeyLeftControl:  KeyLeftControl,
	glfw.KeyLeftAlt:      KeyLeftAlt,
	glfw.KeyLeftSuper:    KeyLeftWindows,
	glfw.KeyRightShift:   KeyRightShift,
	glfw.KeyRightControl: KeyRightControl,
	glfw.KeyRightAlt:     KeyRightAlt,
	glfw.KeyRightSuper:   KeyRightWindows,
	glfw.KeyMenu:         KeyApps,
}

var glfwToMouseButton = map[glfw.MouseButton]MouseButton{
	glfw.MouseButtonLeft:   MouseButtonLeft,
	glfw.MouseButtonRight:  MouseButtonRight,
	glfw.MouseButtonMiddle: MouseButtonMiddle,
	glfw.MouseButton4:      MouseButtonX1,
	glfw.MouseButton5:      MouseButtonX2,
}

func keyOfGLFW(glfwKey glfw.Key) Key {
	return lookupKey("glfw", glfwToKey, glfwKey, int(glfwKey))
}
