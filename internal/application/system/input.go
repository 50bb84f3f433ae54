package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/infrastructure/config"
)

// Key is a logical key the game reacts to
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyEnter
	KeyEscape
)

var keyNames = [...]string{"Up", "Down", "Left", "Right", "F1", "Enter", "Escape"}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "Unknown"
	}
	return keyNames[k]
}

// InputState holds one frame of input: the keys pressed since the last
// frame, in order, and the steering keys currently held
type InputState struct {
	Pressed []Key

	Left  bool
	Right bool
}

// JustPressed reports whether k was pressed this frame
func (in InputState) JustPressed(k Key) bool {
	for _, p := range in.Pressed {
		if p == k {
			return true
		}
	}
	return false
}

// ebitenKeys maps keyboard keys to logical keys
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyF1:         KeyF1,
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeyEscape:     KeyEscape,
}

// InputSystem handles player input
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	var pressed []Key
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := ebitenKeys[k]; ok {
			pressed = append(pressed, key)
		}
	}

	return InputState{
		Pressed: pressed,
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// UpdatePlayer applies jumps and horizontal steering
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	s.handleJump(player, input)
	s.handleMovement(player, input)
}

// handleJump launches the player on an Up press while grounded.
// Grounded is only cleared here; leaving a ledge keeps it set.
func (s *InputSystem) handleJump(player *entity.Player, input InputState) {
	for _, k := range input.Pressed {
		if k == KeyUp && player.OnGround {
			player.OnGround = false
			player.Velocity.Y = -s.config.Movement.JumpImpulse
		}
	}
}

// handleMovement nudges horizontal speed by one step per frame while a direction
// is held and the speed is below the run limit. While left is held, right is
// ignored even when left is already at the limit.
func (s *InputSystem) handleMovement(player *entity.Player, input InputState) {
	m := s.config.Movement
	if input.Left {
		if player.Velocity.X > -m.MaxRunSpeed {
			player.Velocity.X -= m.MoveStep
		}
	} else if input.Right {
		if player.Velocity.X < m.MaxRunSpeed {
			player.Velocity.X += m.MoveStep
		}
	}
}
