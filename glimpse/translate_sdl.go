//go:build sdl2

package glimpse

import "github.com/veandco/go-sdl2/sdl"

// sdlToKey translates SDL key codes. Key codes follow the active keyboard
// layout, scan codes are only used for logging.
var sdlToKey = map[sdl.Keycode]Key{
	sdl.K_RETURN:       KeyEnter,
	sdl.K_ESCAPE:       KeyEscape,
	sdl.K_BACKSPACE:    KeyBack,
	sdl.K_TAB:          KeyTab,
	sdl.K_SPACE:        KeySpace,
	sdl.K_MINUS:        KeyOemMinus,
	sdl.K_EQUALS:       KeyOemPlus,
	sdl.K_PLUS:         KeyOemPlus,
	sdl.K_LEFTBRACKET:  KeyOemOpenBrackets,
	sdl.K_RIGHTBRACKET: KeyOemCloseBrackets,
	sdl.K_BACKSLASH:    KeyOemPipe,
	sdl.K_SEMICOLON:    KeyOemSemicolon,
	sdl.K_QUOTE:        KeyOemQuotes,
	sdl.K_BACKQUOTE:    KeyOemTilde,
	sdl.K_COMMA:        KeyOemComma,
	sdl.K_PERIOD:       KeyOemPeriod,
	sdl.K_SLASH:        KeyOemQuestion,
	sdl.K_LESS:         KeyOemBackslash,

	sdl.K_0: Key0,
	sdl.K_1: Key1,
	sdl.K_2: Key2,
	sdl.K_3: Key3,
	sdl.K_4: Key4,
	sdl.K_5: Key5,
	sdl.K_6: Key6,
	sdl.K_7: Key7,
	sdl.K_8: Key8,
	sdl.K_9: Key9,

	sdl.K_a: KeyA,
	sdl.K_b: KeyB,
	sdl.K_c: KeyC,
	sdl.K_d: KeyD,
	sdl.K_e: KeyE,
	sdl.K_f: KeyF,
	sdl.K_g: KeyG,
	sdl.K_h: KeyH,
	sdl.K_i: KeyI,
	sdl.K_j: KeyJ,
	sdl.K_k: KeyK,
	sdl.K_l: KeyL,
	sdl.K_m: KeyM,
	sdl.K_n: KeyN,
	sdl.K_o: KeyO,
	sdl.K_p: KeyP,
	sdl.K_q: KeyQ,
	sdl.K_r: KeyR,
	sdl.K_s: KeyS,
	sdl.K_t: KeyT,
	sdl.K_u: KeyU,
	sdl.K_v: KeyV,
	sdl.K_w: KeyW,
	sdl.K_x: KeyX,
	sdl.K_y: KeyY,
	sdl.K_z: KeyZ,

	sdl.K_CAPSLOCK:     KeyCapsLock,
	sdl.K_NUMLOCKCLEAR: KeyNumLock,
	sdl.K_SCROLLLOCK:   KeyScroll,
	sdl.K_PRINTSCREEN:  KeyPrintScreen,
	sdl.K_PAUSE:        KeyPause,
	sdl.K_INSERT:       KeyInsert,
	sdl.K_DELETE:       KeyDelete,
	sdl.K_HOME:         KeyHome,
	sdl.K_END:          KeyEnd,
	sdl.K_PAGEUP:       KeyPageUp,
	sdl.K_PAGEDOWN:     KeyPageDown,
	sdl.K_RIGHT:        KeyRight,
	sdl.K_LEFT:         KeyLeft,
	sdl.K_DOWN:         KeyDown,
	sdl.K_UP:           KeyUp,
	sdl.K_APPLICATION:  KeyApps,
	sdl.K_HELP:         KeyHelp,
	sdl.K_SELECT:       KeySelect,
	sdl.K_EXECUTE:      KeyExecute,
	sdl.K_SLEEP:        KeySleep,

	sdl.K_F1:  KeyF1,
	sdl.K_F2:  KeyF2,
	sdl.K_F3:  KeyF3,
	sdl.K_F4:  KeyF4,
	sdl.K_F5:  KeyF5,
	sdl.K_F6:  KeyF6,
	sdl.K_F7:  KeyF7,
	sdl.K_F8:  KeyF8,
	sdl.K_F9:  KeyF9,
	sdl.K_F10: KeyF10,
	sdl.K_F11: KeyF11,
	sdl.K_F12: KeyF12,
	sdl.K_F13: KeyF13,
	sdl.K_F14: KeyF14,
	sdl.K_F15: KeyF15,
	sdl.K_F16: KeyF16,
	sdl.K_F17: KeyF17,
	sdl.K_F18: KeyF18,
	sdl.K_F19: KeyF19,
	sdl.K_F20: KeyF20,
	sdl.K_F21: KeyF21,
	sdl.K_F22: KeyF22,
	sdl.K_F23: KeyF23,
	sdl.K_F24: KeyF24,

	sdl.K_KP_0:        KeyNumPad0,
	sdl.K_KP_1:        KeyNumPad1,
	sdl.K_KP_2:        KeyNumPad2,
	sdl.K_KP_3:        KeyNumPad3,
	sdl.K_KP_4:        KeyNumPad4,
	sdl.K_KP_5:        KeyNumPad5,
	sdl.K_KP_6:        KeyNumPad6,
	sdl.K_KP_7:        KeyNumPad7,
	sdl.K_KP_8:        KeyNumPad8,
	sdl.K_KP_9:        KeyNumPad9,
	sdl.K_KP_PERIOD:   KeyDecimal,
	sdl.K_KP_DIVIDE:   KeyDivide,
	sdl.K_KP_MULTIPLY: KeyMultiply,
	sdl.K_KP_MINUS:    KeySubtract,
	sdl.K_KP_PLUS:     KeyAdd,
	sdl.K_KP_ENTER:    KeyEnter,

	sdl.K_LSHIFT: KeyLeftShift,
	sdl.K_RSHIFT: KeyRightShift,
	sdl.K_LCTRL:  KeyLeftControl,
	sdl.K_RCTRL:  KeyRightControl,
	sdl.K_LALT:   KeyLeftAlt,
	sdl.K_RALT:   KeyRightAlt,
	sdl.K_LGUI:   KeyLeftWindows,
	sdl.K_RGUI:   KeyRightWindows,

	sdl.K_AUDIOMUTE:  KeyVolumeMute,
	sdl.K_VOLUMEDOWN: KeyVolumeDown,
	sdl.K_VOLUMEUP:   KeyVolumeUp,
	sdl.K_AUDIONEXT:  KeyMediaNextTrack,
	sdl.K_AUDIOPREV:  KeyMediaPreviousTrack,
	sdl.K_AUDIOSTOP:  KeyMediaStop,
	sdl.K_AUDIOPLAY:  KeyMediaPlayPause,
	sdl.K_MAIL:       KeyLaunchMail,
	sdl.K_AC_BACK:    KeyBrowserBack,
	sdl.K_AC_FORWARD: KeyBrowserForward,
	sdl.K_AC_REFRESH: KeyBrowserRefresh,
	sdl.K_AC_STOP:    KeyBrowserStop,
	sdl.K_AC_SEARCH:  KeyBrowserSearch,
	sdl.K_AC_HOME:    KeyBrowserHome,
}

var sdlToMouseButton = map[uint8]MouseButton{
	sdl.BUTTON_LEFT:   MouseButtonLeft,
	sdl.BUTTON_MIDDLE: MouseButtonMiddle,
	sdl.BUTTON_RIGHT:  MouseButtonRight,
	sdl.BUTTON_X1:     MouseButtonX1,
	sdl.BUTTON_X2:     MouseButtonX2,
}

func keyOfSDL(sym sdl.Keysym) Key {
	return lookupKey("sdl2", sdlToKey, sym.Sym, int(sym.Scancode))
}

// sdlWheel converts a mouse wheel event. SDL reports whole notches, flipped
// when the user enabled natural scrolling.
func sdlWheel(ev *sdl.MouseWheelEvent) MouseWheel {
	dx, dy := float64(ev.X), float64(ev.Y)
	if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
		dx, dy = -dx, -dy
	}

	return MouseWheel{DeltaX: dx * sdlWheelScale, DeltaY: dy * sdlWheelScale}
}
