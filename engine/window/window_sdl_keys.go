package window

import (
	"github.com/Carmen-Shannon/bliss/common"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlScancodes = map[sdl.Scancode]common.KeyboardKey{
	sdl.SCANCODE_A: common.KeyA, sdl.SCANCODE_B: common.KeyB, sdl.SCANCODE_C: common.KeyC,
	sdl.SCANCODE_D: common.KeyD, sdl.SCANCODE_E: common.KeyE, sdl.SCANCODE_F: common.KeyF,
	sdl.SCANCODE_G: common.KeyG, sdl.SCANCODE_H: common.KeyH, sdl.SCANCODE_I: common.KeyI,
	sdl.SCANCODE_J: common.KeyJ, sdl.SCANCODE_K: common.KeyK, sdl.SCANCODE_L: common.KeyL,
	sdl.SCANCODE_M: common.KeyM, sdl.SCANCODE_N: common.KeyN, sdl.SCANCODE_O: common.KeyO,
	sdl.SCANCODE_P: common.KeyP, sdl.SCANCODE_Q: common.KeyQ, sdl.SCANCODE_R: common.KeyR,
	sdl.SCANCODE_S: common.KeyS, sdl.SCANCODE_T: common.KeyT, sdl.SCANCODE_U: common.KeyU,
	sdl.SCANCODE_V: common.KeyV, sdl.SCANCODE_W: common.KeyW, sdl.SCANCODE_X: common.KeyX,
	sdl.SCANCODE_Y: common.KeyY, sdl.SCANCODE_Z: common.KeyZ,

	sdl.SCANCODE_1: common.KeyNumber1, sdl.SCANCODE_2: common.KeyNumber2, sdl.SCANCODE_3: common.KeyNumber3,
	sdl.SCANCODE_4: common.KeyNumber4, sdl.SCANCODE_5: common.KeyNumber5, sdl.SCANCODE_6: common.KeyNumber6,
	sdl.SCANCODE_7: common.KeyNumber7, sdl.SCANCODE_8: common.KeyNumber8, sdl.SCANCODE_9: common.KeyNumber9,
	sdl.SCANCODE_0: common.KeyNumber0,

	sdl.SCANCODE_RETURN:         common.KeyEnter,
	sdl.SCANCODE_ESCAPE:         common.KeyEscape,
	sdl.SCANCODE_BACKSPACE:      common.KeyBackSpace,
	sdl.SCANCODE_TAB:            common.KeyTab,
	sdl.SCANCODE_SPACE:          common.KeySpace,
	sdl.SCANCODE_MINUS:          common.KeyMinus,
	sdl.SCANCODE_EQUALS:         common.KeyPlus,
	sdl.SCANCODE_LEFTBRACKET:    common.KeyBracketLeft,
	sdl.SCANCODE_RIGHTBRACKET:   common.KeyBracketRight,
	sdl.SCANCODE_BACKSLASH:      common.KeyBackSlash,
	sdl.SCANCODE_SEMICOLON:      common.KeySemicolon,
	sdl.SCANCODE_APOSTROPHE:     common.KeyQuote,
	sdl.SCANCODE_GRAVE:          common.KeyTilde,
	sdl.SCANCODE_COMMA:          common.KeyComma,
	sdl.SCANCODE_PERIOD:         common.KeyPeriod,
	sdl.SCANCODE_SLASH:          common.KeySlash,
	sdl.SCANCODE_NONUSBACKSLASH: common.KeyNonUSBackSlash,
	sdl.SCANCODE_CAPSLOCK:       common.KeyCapsLock,

	sdl.SCANCODE_F1: common.KeyF1, sdl.SCANCODE_F2: common.KeyF2, sdl.SCANCODE_F3: common.KeyF3,
	sdl.SCANCODE_F4: common.KeyF4, sdl.SCANCODE_F5: common.KeyF5, sdl.SCANCODE_F6: common.KeyF6,
	sdl.SCANCODE_F7: common.KeyF7, sdl.SCANCODE_F8: common.KeyF8, sdl.SCANCODE_F9: common.KeyF9,
	sdl.SCANCODE_F10: common.KeyF10, sdl.SCANCODE_F11: common.KeyF11, sdl.SCANCODE_F12: common.KeyF12,
	sdl.SCANCODE_F13: common.KeyF13, sdl.SCANCODE_F14: common.KeyF14, sdl.SCANCODE_F15: common.KeyF15,
	sdl.SCANCODE_F16: common.KeyF16, sdl.SCANCODE_F17: common.KeyF17, sdl.SCANCODE_F18: common.KeyF18,
	sdl.SCANCODE_F19: common.KeyF19, sdl.SCANCODE_F20: common.KeyF20, sdl.SCANCODE_F21: common.KeyF21,
	sdl.SCANCODE_F22: common.KeyF22, sdl.SCANCODE_F23: common.KeyF23, sdl.SCANCODE_F24: common.KeyF24,

	sdl.SCANCODE_PRINTSCREEN: common.KeyPrintScreen,
	sdl.SCANCODE_SCROLLLOCK:  common.KeyScrollLock,
	sdl.SCANCODE_PAUSE:       common.KeyPause,
	sdl.SCANCODE_INSERT:      common.KeyInsert,
	sdl.SCANCODE_HOME:        common.KeyHome,
	sdl.SCANCODE_PAGEUP:      common.KeyPageUp,
	sdl.SCANCODE_DELETE:      common.KeyDelete,
	sdl.SCANCODE_END:         common.KeyEnd,
	sdl.SCANCODE_PAGEDOWN:    common.KeyPageDown,
	sdl.SCANCODE_RIGHT:       common.KeyRight,
	sdl.SCANCODE_LEFT:        common.KeyLeft,
	sdl.SCANCODE_DOWN:        common.KeyDown,
	sdl.SCANCODE_UP:          common.KeyUp,

	sdl.SCANCODE_NUMLOCKCLEAR: common.KeyNumLock,
	sdl.SCANCODE_KP_DIVIDE:    common.KeyKeypadDivide,
	sdl.SCANCODE_KP_MULTIPLY:  common.KeyKeypadMultiply,
	sdl.SCANCODE_KP_MINUS:     common.KeyKeypadMinus,
	sdl.SCANCODE_KP_PLUS:      common.KeyKeypadPlus,
	sdl.SCANCODE_KP_EQUALS:    common.KeyKeypadPlus,
	sdl.SCANCODE_KP_ENTER:     common.KeyKeypadEnter,
	sdl.SCANCODE_KP_1:         common.KeyKeypad1,
	sdl.SCANCODE_KP_2:         common.KeyKeypad2,
	sdl.SCANCODE_KP_3:         common.KeyKeypad3,
	sdl.SCANCODE_KP_4:         common.KeyKeypad4,
	sdl.SCANCODE_KP_5:         common.KeyKeypad5,
	sdl.SCANCODE_KP_6:         common.KeyKeypad6,
	sdl.SCANCODE_KP_7:         common.KeyKeypad7,
	sdl.SCANCODE_KP_8:         common.KeyKeypad8,
	sdl.SCANCODE_KP_9:         common.KeyKeypad9,
	sdl.SCANCODE_KP_0:         common.KeyKeypad0,
	sdl.SCANCODE_KP_PERIOD:    common.KeyKeypadDecimal,

	sdl.SCANCODE_MENU:   common.KeyMenu,
	sdl.SCANCODE_LCTRL:  common.KeyControlLeft,
	sdl.SCANCODE_LSHIFT: common.KeyShiftLeft,
	sdl.SCANCODE_LALT:   common.KeyAltLeft,
	sdl.SCANCODE_LGUI:   common.KeyWinLeft,
	sdl.SCANCODE_RCTRL:  common.KeyControlRight,
	sdl.SCANCODE_RSHIFT: common.KeyShiftRight,
	sdl.SCANCODE_RALT:   common.KeyAltRight,
	sdl.SCANCODE_RGUI:   common.KeyWinRight,
}

// mapSDLScancode translates an SDL scancode into a KeyboardKey. Unmapped scancodes yield KeyUnknown.
func mapSDLScancode(code sdl.Scancode) common.KeyboardKey {
	if k, ok := sdlScancodes[code]; ok {
		return k
	}
	return common.KeyUnknown
}

func mapSDLMouseButton(button uint8) (common.MouseButton, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return common.MouseButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return common.MouseButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return common.MouseButtonRight, true
	case sdl.BUTTON_X1:
		return common.MouseButtonX1, true
	case sdl.BUTTON_X2:
		return common.MouseButtonX2, true
	}
	return 0, false
}
