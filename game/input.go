package game

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the player's intent for one frame.
type Input struct {
	Left  bool // Left arrow held
	Right bool // Right arrow held
	Fire  int  // Space presses since the previous frame, one bullet each
	Quit  bool // Window close requested
	Debug bool // Debug HUD toggle pressed
}

// InputSource produces one Input per frame.
type InputSource interface {
	Poll() Input
}

// KeyboardInput reads the raylib window's keyboard state.
// It needs an open window.
type KeyboardInput struct{}

// NewKeyboardInput disables raylib's default Esc exit key so that only the
// window close button ends the game.
func NewKeyboardInput() *KeyboardInput {
	rl.SetExitKey(rl.KeyNull)
	return &KeyboardInput{}
}

// Poll drains the key-press queue and samples held arrow keys.
func (k *KeyboardInput) Poll() Input {
	var in Input
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		switch key {
		case rl.KeySpace:
			in.Fire++
		case rl.KeyF3:
			in.Debug = true
		}
	}

	in.Left = rl.IsKeyDown(rl.KeyLeft)
	in.Right = rl.IsKeyDown(rl.KeyRight)
	in.Quit = rl.WindowShouldClose()
	return in
}

// ScriptedInput replays a fixed pattern, for headless runs and tests.
type ScriptedInput struct {
	FireEvery int  // Fire once every N frames, starting with the first; 0 never fires
	Left      bool // Hold left every frame
	Right     bool // Hold right every frame
	MaxFrames int  // Request quit on this frame; 0 runs until stopped externally

	frame int
}

// Poll returns the scripted input for the next frame.
func (s *ScriptedInput) Poll() Input {
	in := Input{Left: s.Left, Right: s.Right}
	if s.FireEvery > 0 && s.frame%s.FireEvery == 0 {
		in.Fire = 1
	}
	s.frame++
	if s.MaxFrames > 0 && s.frame >= s.MaxFrames {
		in.Quit = true
	}
	return in
}

// Frames returns how many inputs have been polled.
func (s *ScriptedInput) Frames() int {
	return s.frame
}
