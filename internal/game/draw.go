package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/core/geom"
	"chosenoffset.com/pixelrealm/internal/crafting"
	"chosenoffset.com/pixelrealm/internal/entity"
	"chosenoffset.com/pixelrealm/internal/inventory"
	"chosenoffset.com/pixelrealm/internal/render"
	"chosenoffset.com/pixelrealm/internal/render/lighting"
	"chosenoffset.com/pixelrealm/internal/sprite"
	"chosenoffset.com/pixelrealm/internal/ui/hud"
	"chosenoffset.com/pixelrealm/internal/world"
)

// Sprites are built at this scale (8x8 tables become 32x32) and scaled to
// each body's size when drawn
const spriteScale = 4

var (
	castleFloor  = color.RGBA{90, 88, 95, 255}
	castleFloor2 = color.RGBA{100, 98, 105, 255}
	nightTint    = color.RGBA{10, 10, 40, 255}
)

// image returns the uploaded sprite, building it on first use
func (m *Manager) image(name string) render.Image {
	if img, ok := m.images[name]; ok {
		return img
	}
	rgba, err := m.Sprites.Image(name, spriteScale)
	if err != nil {
		m.Log.Warn().Err(err).Str("sprite", name).Msg("Missing sprite")
		m.images[name] = nil
		return nil
	}
	img := m.Renderer.NewImageFromRGBA(rgba)
	m.images[name] = img
	return img
}

// tile returns the biome's accent ground tile
func (m *Manager) tile(b world.BiomeInfo) render.Image {
	key := "tile:" + string(b.Name)
	if img, ok := m.images[key]; ok {
		return img
	}
	img := m.Renderer.NewImageFromRGBA(sprite.PatternedTile(b.Ground, b.Accent, b.Pattern))
	m.images[key] = img
	return img
}

// drawSprite draws name centred on pos, scaled to size
func (m *Manager) drawSprite(screen render.Image, name string, pos geom.Vec3, size float64) {
	img := m.image(name)
	if img == nil {
		return
	}
	w, _ := img.Size()
	cam := m.Game.Camera
	op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	op.GeoM.Scale(size/float64(w), size/float64(w))
	op.GeoM.Translate(pos.X-size/2-cam.X, pos.Y-size/2-pos.Z-cam.Y)
	screen.DrawImage(img, op)
}

func (m *Manager) visible(pos geom.Vec3, size float64) bool {
	cam := m.Game.Camera
	r := size / 2
	return pos.X+r >= cam.X && pos.Y+r >= cam.Y &&
		pos.X-r <= cam.X+float64(m.ScreenWidth) && pos.Y-r <= cam.Y+float64(m.ScreenHeight)
}

func (m *Manager) drawWorld(screen render.Image) {
	g := m.Game
	if g.World == nil {
		return
	}
	area := g.Area()

	m.drawGround(screen, area)
	m.drawDecorations(screen, area)
	for i := range area.Obstacles {
		o := &area.Obstacles[i]
		if !m.visible(o.Pos, o.Size) {
			continue
		}
		if o.Kind == "castle" {
			m.drawCastle(screen, o)
			continue
		}
		m.drawSprite(screen, o.Kind, o.Pos, o.Size)
	}

	if g.State.Location == gamestate.Overworld {
		m.drawShrines(screen)
	} else {
		m.drawExit(screen, area)
		for _, n := range g.NPCs {
			m.drawSprite(screen, n.Sprite, n.Pos, n.Size+6)
		}
	}

	for _, mon := range g.Monsters {
		if m.visible(mon.Pos, mon.Size()) {
			m.drawSprite(screen, mon.Kind.Sprite, mon.Pos, mon.Size())
		}
	}
	m.drawPlayer(screen)
	m.drawProjectiles(screen)
	m.drawParticles(screen)

	if g.State.Location == gamestate.Overworld {
		m.drawLighting(screen)
	}
}

func (m *Manager) drawGround(screen render.Image, area *world.Area) {
	g := m.Game
	ts := float64(sprite.TileSize)
	cam := g.Camera
	biome := g.World.Biome
	var patterned render.Image
	if area.Location == gamestate.Overworld {
		patterned = m.tile(biome)
	}

	x0 := max(int(cam.X/ts), 0)
	y0 := max(int(cam.Y/ts), 0)
	x1 := min(int((cam.X+float64(m.ScreenWidth))/ts)+1, int(area.Size/ts)+1)
	y1 := min(int((cam.Y+float64(m.ScreenHeight))/ts)+1, int(area.Size/ts)+1)

	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			var c color.RGBA
			if area.Location == gamestate.Castle {
				c = castleFloor
				if (tx+ty)%2 == 0 {
					c = castleFloor2
				}
			} else {
				shade := g.World.GroundShade(tx, ty)
				c = sprite.Darken(biome.Ground, 0.85+0.15*shade)
				if shade > 0.7 && patterned != nil {
					op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
					op.GeoM.Translate(float64(tx)*ts-cam.X, float64(ty)*ts-cam.Y)
					screen.DrawImage(patterned, op)
					continue
				}
			}
			w := min(ts, area.Size-float64(tx)*ts)
			h := min(ts, area.Size-float64(ty)*ts)
			if w <= 0 || h <= 0 {
				continue
			}
			m.Renderer.FillRect(screen, float32(float64(tx)*ts-cam.X), float32(float64(ty)*ts-cam.Y), float32(w), float32(h), c)
		}
	}
}

func (m *Manager) drawDecorations(screen render.Image, area *world.Area) {
	g := m.Game
	palette := g.World.Biome.Decorations
	if len(palette) == 0 {
		return
	}
	for _, d := range area.Decorations {
		if !m.visible(d.Pos, d.Size) {
			continue
		}
		c := palette[d.Color%len(palette)]
		m.Renderer.FillCircle(screen, float32(d.Pos.X-g.Camera.X), float32(d.Pos.Y-g.Camera.Y), float32(d.Size/2), c)
	}
}

func (m *Manager) drawCastle(screen render.Image, o *world.Obstacle) {
	cam := m.Game.Camera
	m.drawSprite(screen, "wall", o.Pos, o.Size)
	door := m.Game.World.Overworld.Door
	m.Renderer.FillRect(screen, float32(door.X-14-cam.X), float32(door.Y-36-cam.Y), 28, 36, color.RGBA{90, 60, 30, 255})
	m.drawSprite(screen, "door", door.Add(geom.V2(0, -18)), 28)
}

func (m *Manager) drawExit(screen render.Image, area *world.Area) {
	cam := m.Game.Camera
	r := float32(m.Game.Config.World.DoorRadius)
	m.Renderer.StrokeCircle(screen, float32(area.Door.X-cam.X), float32(area.Door.Y-cam.Y), r, 2, color.RGBA{240, 220, 140, 200})
}

func (m *Manager) drawShrines(screen render.Image) {
	g := m.Game
	for _, s := range g.World.Shrines {
		if !m.visible(s.Pos, s.Size*2) {
			continue
		}
		if glow := s.Glow(); glow > 0 {
			a := uint8(60 + 120*glow)
			m.Renderer.FillCircle(screen, float32(s.Pos.X-g.Camera.X), float32(s.Pos.Y-g.Camera.Y), float32(s.Size*0.9), color.RGBA{140, 220, 255, a})
		}
		m.drawSprite(screen, "shrine", s.Pos, s.Size)
	}
}

func (m *Manager) drawPlayer(screen render.Image) {
	p := m.Game.Player
	// Blink while invulnerable
	if p.Invulnerable > 0 && int(p.Invulnerable*10)%2 == 1 {
		return
	}
	m.drawSprite(screen, "player", p.Pos, p.Size+8)
}

func (m *Manager) drawProjectiles(screen render.Image) {
	g := m.Game
	for _, list := range [][]*entity.Projectile{g.PlayerProjectiles, g.MonsterProjectiles} {
		for _, p := range list {
			if !m.visible(p.Pos, p.Size) {
				continue
			}
			m.Renderer.FillCircle(screen, float32(p.Pos.X-g.Camera.X), float32(p.Pos.Y-g.Camera.Y), float32(p.Size/2), p.Color)
		}
	}
}

func (m *Manager) drawParticles(screen render.Image) {
	g := m.Game
	for _, pt := range g.Particles.Particles() {
		c := pt.Color
		c.A = uint8(float64(c.A) * pt.Alpha())
		m.Renderer.FillRect(screen, float32(pt.Pos.X-g.Camera.X), float32(pt.Pos.Y-g.Camera.Y), float32(pt.Size), float32(pt.Size), c)
	}
}

// drawLighting darkens the view as the day clock moves toward midnight,
// then lays the lantern and shrine glows over the dark
func (m *Manager) drawLighting(screen render.Image) {
	g := m.Game
	l := m.Lighting
	l.SetAmbientLight(g.World.Daylight())
	l.UpdatePlayerLightPosition(g.Player.Pos.X, g.Player.Pos.Y)
	for _, s := range g.World.Shrines {
		l.SetLight(shrineLightKey(s.ID), lighting.LightSource{
			X: s.Pos.X, Y: s.Pos.Y, Radius: s.Size * 2, Intensity: s.Glow(),
			Color: color.NRGBA{140, 220, 255, 255},
		})
	}

	dark := l.Darkness()
	if dark <= 0.01 {
		return
	}
	c := nightTint
	c.A = uint8(dark * 255)
	m.Renderer.FillRect(screen, 0, 0, float32(m.ScreenWidth), float32(m.ScreenHeight), c)

	cam := g.Camera
	for _, src := range l.Lights() {
		x, y := float32(src.X-cam.X), float32(src.Y-cam.Y)
		// Three falloff rings, brightest in the middle
		for i := 3; i >= 1; i-- {
			lc := src.Color
			lc.A = uint8(src.Intensity * dark * 60)
			m.Renderer.FillCircle(screen, x, y, float32(src.Radius*float64(i)/3), lc)
		}
	}
}

func shrineLightKey(id int) string {
	return "shrine:" + shrineKey(id)
}

func (m *Manager) drawOverlays(screen render.Image) {
	g := m.Game
	if c := g.Conversation; c != nil {
		x, y := m.ScreenWidth/2-220, m.ScreenHeight-260
		m.Renderer.FillRect(screen, float32(x), float32(y), 440, 200, color.RGBA{20, 20, 30, 220})
		m.Renderer.StrokeRect(screen, float32(x), float32(y), 440, 200, 1, color.RGBA{200, 200, 220, 255})
		m.Renderer.DrawText(screen, c.Speaker, x+12, y+10, color.RGBA{255, 255, 200, 255}, 16)
		m.Renderer.DrawText(screen, c.Greeting, x+12, y+34, color.RGBA{220, 220, 220, 255}, 13)
		for i, opt := range c.Options {
			clr := color.RGBA{200, 200, 200, 255}
			prefix := "  "
			if i == c.Selected {
				clr = color.RGBA{255, 255, 100, 255}
				prefix = "> "
			}
			m.Renderer.DrawText(screen, prefix+opt.Label, x+12, y+62+i*20, clr, 13)
		}
		if len(c.Options) == 0 {
			m.Renderer.DrawText(screen, "Nothing more to offer.", x+12, y+62, color.RGBA{170, 170, 170, 255}, 13)
		}
	}

	switch {
	case g.State.GameOver:
		m.drawBanner(screen, "GAME OVER", fmt.Sprintf("Score %d - press Enter", g.Score), color.RGBA{230, 60, 60, 255})
	case g.State.Paused:
		m.drawBanner(screen, "PAUSED", "P or Escape to resume, F5 save, F9 load", color.RGBA{255, 255, 255, 255})
	}
}

func (m *Manager) drawBanner(screen render.Image, title, sub string, clr color.RGBA) {
	m.Renderer.FillRect(screen, 0, 0, float32(m.ScreenWidth), float32(m.ScreenHeight), color.RGBA{0, 0, 0, 140})
	tw, _ := m.Renderer.MeasureText(title, 40)
	m.Renderer.DrawText(screen, title, m.ScreenWidth/2-tw/2, m.ScreenHeight/2-50, clr, 40)
	sw, _ := m.Renderer.MeasureText(sub, 16)
	m.Renderer.DrawText(screen, sub, m.ScreenWidth/2-sw/2, m.ScreenHeight/2+10, color.RGBA{220, 220, 220, 255}, 16)
}

// Status collects what the HUD shows this frame
func (g *Game) Status() *hud.Status {
	s := &hud.Status{
		Health:     g.Player.Health,
		MaxHealth:  g.Player.MaxHealth,
		Level:      g.Progression.Level,
		XPFraction: g.Progression.Fraction(),
		Score:      g.Score,
		Gold:       g.Inventory.Count(inventory.Gold),
		Weapon:     g.Player.Weapon().Name,
		Region:     g.World.Biome.Title,

		MinimapPlayer: hud.Point{X: g.Minimap.Player.X, Y: g.Minimap.Player.Y},
		MinimapDoor:   hud.Point{X: g.Minimap.Door.X, Y: g.Minimap.Door.Y},
		MinimapGround: g.World.Biome.Ground,
	}
	if g.State.Location == gamestate.Castle {
		s.Region = "Castle"
		s.MinimapGround = castleFloor
	}
	for _, b := range world.BuffKinds {
		if left, ok := g.Player.Buffs[b]; ok {
			s.Buffs = append(s.Buffs, fmt.Sprintf("%s %.0fs", b, math.Ceil(left)))
		}
	}
	for _, p := range g.Quests.Active() {
		s.Quests = append(s.Quests, fmt.Sprintf("%s %d/%d", p.Quest.Title, p.Current, p.Quest.Objective.Target()))
	}
	if g.Crafter.State() != crafting.Idle {
		s.Crafting = g.Library.DisplayName(g.Crafter.Current().Output.ItemID)
		s.CraftingProgress = g.Crafter.Progress()
	}
	for _, msg := range g.Messages {
		s.Messages = append(s.Messages, hud.Message{Text: msg.Text, Alpha: min(msg.TimeLeft, 1)})
	}
	for _, p := range g.Minimap.Monsters {
		s.MinimapMonsters = append(s.MinimapMonsters, hud.Point{X: p.X, Y: p.Y})
	}
	for _, p := range g.Minimap.Shrines {
		s.MinimapShrines = append(s.MinimapShrines, hud.Point{X: p.X, Y: p.Y})
	}
	return s
}
