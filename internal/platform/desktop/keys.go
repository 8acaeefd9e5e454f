package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
)

// keyActions maps window keys to walk actions. Several keys may share an
// action.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyN, core.ActionPlane},
	{ebiten.KeyF, core.ActionFlatTorus},
	{ebiten.KeyC, core.ActionCurvedTorus},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeySpace, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyE, core.ActionExport},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// keyFrame collects the actions whose keys were pressed this tick.
// justPressed is inpututil.IsKeyJustPressed outside of tests.
func keyFrame(justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, ka := range keyActions {
		if justPressed(ka.key) {
			in.Set(ka.action)
		}
	}
	return in
}
