package window

import (
	"github.com/Carmen-Shannon/bliss/common"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[glfw.Key]common.KeyboardKey{
	glfw.KeyA: common.KeyA, glfw.KeyB: common.KeyB, glfw.KeyC: common.KeyC, glfw.KeyD: common.KeyD,
	glfw.KeyE: common.KeyE, glfw.KeyF: common.KeyF, glfw.KeyG: common.KeyG, glfw.KeyH: common.KeyH,
	glfw.KeyI: common.KeyI, glfw.KeyJ: common.KeyJ, glfw.KeyK: common.KeyK, glfw.KeyL: common.KeyL,
	glfw.KeyM: common.KeyM, glfw.KeyN: common.KeyN, glfw.KeyO: common.KeyO, glfw.KeyP: common.KeyP,
	glfw.KeyQ: common.KeyQ, glfw.KeyR: common.KeyR, glfw.KeyS: common.KeyS, glfw.KeyT: common.KeyT,
	glfw.KeyU: common.KeyU, glfw.KeyV: common.KeyV, glfw.KeyW: common.KeyW, glfw.KeyX: common.KeyX,
	glfw.KeyY: common.KeyY, glfw.KeyZ: common.KeyZ,

	glfw.Key0: common.KeyNumber0, glfw.Key1: common.KeyNumber1, glfw.Key2: common.KeyNumber2,
	glfw.Key3: common.KeyNumber3, glfw.Key4: common.KeyNumber4, glfw.Key5: common.KeyNumber5,
	glfw.Key6: common.KeyNumber6, glfw.Key7: common.KeyNumber7, glfw.Key8: common.KeyNumber8,
	glfw.Key9: common.KeyNumber9,

	glfw.KeyEnter:        common.KeyEnter,
	glfw.KeyEscape:       common.KeyEscape,
	glfw.KeyBackspace:    common.KeyBackSpace,
	glfw.KeyTab:          common.KeyTab,
	glfw.KeySpace:        common.KeySpace,
	glfw.KeyMinus:        common.KeyMinus,
	glfw.KeyEqual:        common.KeyPlus,
	glfw.KeyLeftBracket:  common.KeyBracketLeft,
	glfw.KeyRightBracket: common.KeyBracketRight,
	glfw.KeyBackslash:    common.KeyBackSlash,
	glfw.KeySemicolon:    common.KeySemicolon,
	glfw.KeyApostrophe:   common.KeyQuote,
	glfw.KeyGraveAccent:  common.KeyTilde,
	glfw.KeyComma:        common.KeyComma,
	glfw.KeyPeriod:       common.KeyPeriod,
	glfw.KeySlash:        common.KeySlash,
	glfw.KeyWorld2:       common.KeyNonUSBackSlash,
	glfw.KeyCapsLock:     common.KeyCapsLock,

	glfw.KeyF1: common.KeyF1, glfw.KeyF2: common.KeyF2, glfw.KeyF3: common.KeyF3, glfw.KeyF4: common.KeyF4,
	glfw.KeyF5: common.KeyF5, glfw.KeyF6: common.KeyF6, glfw.KeyF7: common.KeyF7, glfw.KeyF8: common.KeyF8,
	glfw.KeyF9: common.KeyF9, glfw.KeyF10: common.KeyF10, glfw.KeyF11: common.KeyF11, glfw.KeyF12: common.KeyF12,
	glfw.KeyF13: common.KeyF13, glfw.KeyF14: common.KeyF14, glfw.KeyF15: common.KeyF15, glfw.KeyF16: common.KeyF16,
	glfw.KeyF17: common.KeyF17, glfw.KeyF18: common.KeyF18, glfw.KeyF19: common.KeyF19, glfw.KeyF20: common.KeyF20,
	glfw.KeyF21: common.KeyF21, glfw.KeyF22: common.KeyF22, glfw.KeyF23: common.KeyF23, glfw.KeyF24: common.KeyF24,

	glfw.KeyPrintScreen: common.KeyPrintScreen,
	glfw.KeyScrollLock:  common.KeyScrollLock,
	glfw.KeyPause:       common.KeyPause,
	glfw.KeyInsert:      common.KeyInsert,
	glfw.KeyHome:        common.KeyHome,
	glfw.KeyPageUp:      common.KeyPageUp,
	glfw.KeyDelete:      common.KeyDelete,
	glfw.KeyEnd:         common.KeyEnd,
	glfw.KeyPageDown:    common.KeyPageDown,
	glfw.KeyRight:       common.KeyRight,
	glfw.KeyLeft:        common.KeyLeft,
	glfw.KeyDown:        common.KeyDown,
	glfw.KeyUp:          common.KeyUp,

	glfw.KeyNumLock:    common.KeyNumLock,
	glfw.KeyKPDivide:   common.KeyKeypadDivide,
	glfw.KeyKPMultiply: common.KeyKeypadMultiply,
	glfw.KeyKPSubtract: common.KeyKeypadMinus,
	glfw.KeyKPAdd:      common.KeyKeypadPlus,
	glfw.KeyKPEqual:    common.KeyKeypadPlus,
	glfw.KeyKPEnter:    common.KeyKeypadEnter,
	glfw.KeyKP0:        common.KeyKeypad0,
	glfw.KeyKP1:        common.KeyKeypad1,
	glfw.KeyKP2:        common.KeyKeypad2,
	glfw.KeyKP3:        common.KeyKeypad3,
	glfw.KeyKP4:        common.KeyKeypad4,
	glfw.KeyKP5:        common.KeyKeypad5,
	glfw.KeyKP6:        common.KeyKeypad6,
	glfw.KeyKP7:        common.KeyKeypad7,
	glfw.KeyKP8:        common.KeyKeypad8,
	glfw.KeyKP9:        common.KeyKeypad9,
	glfw.KeyKPDecimal:  common.KeyKeypadDecimal,

	glfw.KeyLeftControl:  common.KeyControlLeft,
	glfw.KeyLeftShift:    common.KeyShiftLeft,
	glfw.KeyLeftAlt:      common.KeyAltLeft,
	glfw.KeyLeftSuper:    common.KeyWinLeft,
	glfw.KeyRightControl: common.KeyControlRight,
	glfw.KeyRightShift:   common.KeyShiftRight,
	glfw.KeyRightAlt:     common.KeyAltRight,
	glfw.KeyRightSuper:   common.KeyWinRight,
	glfw.KeyMenu:         common.KeyMenu,
}

// mapGLFWKey translates a GLFW key into a KeyboardKey. Unmapped keys yield KeyUnknown.
func mapGLFWKey(key glfw.Key) common.KeyboardKey {
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return common.KeyUnknown
}

func mapGLFWMouseButton(button glfw.MouseButton) (common.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return common.MouseButtonLeft, true
	case glfw.MouseButtonMiddle:
		return common.MouseButtonMiddle, true
	case glfw.MouseButtonRight:
		return common.MouseButtonRight, true
	case glfw.MouseButton4:
		return common.MouseButtonX1, true
	case glfw.MouseButton5:
		return common.MouseButtonX2, true
	}
	return 0, false
}
