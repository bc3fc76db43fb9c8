package system

import (
	"github.com/milk9111/boxbounce/common"
	"github.com/milk9111/boxbounce/ecs"
	"github.com/milk9111/boxbounce/sound"
)

// contactsForFullVolume is the contact count that plays a blip at full strength.
const contactsForFullVolume = 4

// AudioSystem plays one blip per frame that had body contacts.
type AudioSystem struct {
	Player sound.Player
}

func NewAudioSystem(player sound.Player) *AudioSystem {
	if player == nil {
		player = sound.Nop{}
	}
	return &AudioSystem{Player: player}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || a.Player == nil || w == nil {
		return
	}
	contacts := ecs.CountCollisions(w.Events().Pending(), ecs.CollisionEventContact)
	if contacts == 0 {
		return
	}
	a.Player.Blip(common.Clamp01(float64(contacts) / contactsForFullVolume))
}
