package common

// KeyboardKey identifies a physical keyboard key independent of the window backend.
// Backends translate their native key or scancode values into these.
type KeyboardKey int32

const (
	KeyUnknown KeyboardKey = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyNumber0
	KeyNumber1
	KeyNumber2
	KeyNumber3
	KeyNumber4
	KeyNumber5
	KeyNumber6
	KeyNumber7
	KeyNumber8
	KeyNumber9

	KeyEnter
	KeyEscape
	KeyBackSpace
	KeyTab
	KeySpace
	KeyMinus
	KeyPlus
	KeyBracketLeft
	KeyBracketRight
	KeyBackSlash
	KeySemicolon
	KeyQuote
	KeyTilde
	KeyComma
	KeyPeriod
	KeySlash
	KeyNonUSBackSlash
	KeyCapsLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	KeyNumLock
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadMinus
	KeyKeypadPlus
	KeyKeypadEnter
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal

	KeyControlLeft
	KeyShiftLeft
	KeyAltLeft
	KeyWinLeft
	KeyControlRight
	KeyShiftRight
	KeyAltRight
	KeyWinRight
	KeyMenu

	// KeyLastKey is one past the highest defined key and can size lookup tables.
	KeyLastKey
)

// MouseButton identifies a mouse button independent of the window backend.
type MouseButton int32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
)

// MouseCursor identifies a system cursor shape.
type MouseCursor int32

const (
	MouseCursorArrow MouseCursor = iota
	MouseCursorIBeam
	MouseCursorWait
	MouseCursorCrosshair
	MouseCursorWaitArrow
	MouseCursorSizeNWSE
	MouseCursorSizeNESW
	MouseCursorSizeWE
	MouseCursorSizeNS
	MouseCursorSizeAll
	MouseCursorNo
	MouseCursorHand
)
