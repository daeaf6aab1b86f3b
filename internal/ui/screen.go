package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is the interface for all UI screens (Timeline, Help).
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update() (*ScreenTransition, error)
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop
}

// Overlay screens draw on top of the screen below them.
type Overlay interface {
	Overlay() bool
}

// ScreenManager manages a stack of screens.
type ScreenManager struct {
	stack []Screen
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

func (sm *ScreenManager) Push(s Screen) {
	sm.stack = append(sm.stack, s)
	s.OnEnter()
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].OnEnter()
	}
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}
	tr, err := s.Update()
	if err != nil {
		return err
	}
	if tr != nil {
		switch tr.Type {
		case TransitionPush:
			sm.Push(tr.Screen)
		case TransitionPop:
			sm.Pop()
		}
	}
	return nil
}

// Draw renders the top screen, and the one below it when the top is an overlay.
func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	n := len(sm.stack)
	if n == 0 {
		return
	}
	top := sm.stack[n-1]
	if o, ok := top.(Overlay); ok && o.Overlay() && n > 1 {
		sm.stack[n-2].Draw(dst)
	}
	top.Draw(dst)
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}
