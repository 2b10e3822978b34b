package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"chosenoffset.com/pixelrealm/internal/core/dice"
	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/crafting"
	"chosenoffset.com/pixelrealm/internal/dialogue"
	"chosenoffset.com/pixelrealm/internal/entity"
	"chosenoffset.com/pixelrealm/internal/input"
	"chosenoffset.com/pixelrealm/internal/inventory"
	"chosenoffset.com/pixelrealm/internal/particles"
	"chosenoffset.com/pixelrealm/internal/progression"
	"chosenoffset.com/pixelrealm/internal/quest"
	"chosenoffset.com/pixelrealm/internal/render"
	"chosenoffset.com/pixelrealm/internal/save"
	"chosenoffset.com/pixelrealm/internal/simulation"
	"chosenoffset.com/pixelrealm/internal/telemetry"
	"chosenoffset.com/pixelrealm/internal/world"
)

const (
	inventorySlots   = 16
	particleCapacity = 512
)

// Options wires a Game to its collaborators. Zero fields get defaults.
type Options struct {
	Log       zerolog.Logger
	Config    *simulation.Config
	Library   *inventory.Library
	Input     *input.Tracker
	Telemetry *telemetry.Instruments
	Store     save.Store
	Slot      string
}

// Game is the simulation of one run: world, entities and the content
// systems. Step advances it by one fixed tick.
type Game struct {
	Log    zerolog.Logger
	Config *simulation.Config
	State  *gamestate.GameState

	World   *world.World
	Player  *entity.Player
	NPCs    []*entity.NPC
	Camera  Camera
	Minimap Minimap

	// Monsters are kept in insertion order
	Monsters           []*entity.Monster
	PlayerProjectiles  []*entity.Projectile
	MonsterProjectiles []*entity.Projectile
	Particles          *particles.Pool

	Library      *inventory.Library
	Inventory    *inventory.Inventory
	Quests       *quest.Tracker
	Crafter      *crafting.Crafter
	Progression  *progression.Progression
	Conversation *dialogue.Conversation
	talkingTo    *entity.NPC
	Score        int

	Messages []Message

	Input     *input.Tracker
	Telemetry *telemetry.Instruments
	Store     save.Store
	Slot      string

	rng              *rand.Rand
	roller           *dice.Roller
	nextMonsterID    int
	teleportCooldown float64
	minimapTimer     float64
	viewWidth        int
	viewHeight       int
}

// New creates a game that has not started yet
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	lib := opts.Library
	if lib == nil {
		lib = inventory.DefaultLibrary()
	}
	in := opts.Input
	if in == nil {
		in = input.NewTracker(nil)
	}
	slot := opts.Slot
	if slot == "" {
		slot = save.DefaultSlot
	}
	if err := save.CheckSlot(slot); err != nil {
		opts.Log.Warn().Err(err).Str("fallback", save.DefaultSlot).Msg("Unusable save slot")
		slot = save.DefaultSlot
	}

	return &Game{
		Log:       opts.Log,
		Config:    cfg,
		State:     gamestate.New(),
		Library:   lib,
		Input:     in,
		Telemetry: opts.Telemetry,
		Store:     opts.Store,
		Slot:      slot,
	}
}

// StartGame generates a world for biome and begins the run. A zero seed
// picks one from the clock.
func (g *Game) StartGame(biome world.Biome, seed int64) error {
	w, err := g.generateWorld(biome, seed)
	if err != nil {
		return err
	}

	g.State.Reset()
	if err := g.State.Start(string(w.Biome.Name)); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	g.setup(w)

	g.Progression.Discover(string(w.Biome.Name))
	g.Inventory.Add(inventory.Gold, 20)
	g.ShowMessage(fmt.Sprintf("Welcome to the %s", w.Biome.Title))

	g.Log.Info().
		Str("biome", string(w.Biome.Name)).
		Int64("seed", w.Seed).
		Int("obstacles", len(w.Overworld.Obstacles)).
		Msg("Game started")
	return nil
}

func (g *Game) generateWorld(biome world.Biome, seed int64) (*world.World, error) {
	wc := g.Config.World
	gen, err := world.NewGenerator(world.GeneratorConfig{
		Biome:       biome,
		Seed:        seed,
		Size:        wc.Size,
		CastleSize:  wc.CastleSize,
		Obstacles:   wc.Obstacles,
		Decorations: wc.Decorations,
		Shrines:     wc.Shrines,
		DayLength:   wc.DayLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world generator: %w", err)
	}
	w, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate world: %w", err)
	}
	return w, nil
}

// setup resets every per-run system around a freshly generated world
func (g *Game) setup(w *world.World) {
	g.World = w
	g.rng = rand.New(rand.NewSource(w.Seed))
	g.roller = dice.NewRoller(g.rng)

	g.Player = entity.NewPlayer(g.Config.Player, w.Overworld.Spawn)
	g.NPCs = entity.DefaultNPCs(w.NPCSpawns)
	g.Monsters = nil
	g.PlayerProjectiles = nil
	g.MonsterProjectiles = nil
	g.Particles = particles.NewPool(particleCapacity, g.rng)

	g.Inventory = inventory.New(g.Library, inventorySlots)
	g.Quests = quest.NewTracker(quest.DefaultQuests())
	g.Crafter = crafting.NewCrafter(g.Inventory, crafting.DefaultRecipes(), g.Config.Crafting.SpeedMultiplier)
	g.Progression = progression.New()
	g.CloseConversation()
	g.Score = 0
	g.Messages = nil
	g.nextMonsterID = 0
	g.teleportCooldown = 0
	g.minimapTimer = 0
	g.Input.ClearEdges()
	g.refreshMinimap()
}

// Area returns the active area
func (g *Game) Area() *world.Area {
	return g.World.Area(g.State.Location)
}

// Step advances the simulation by dt seconds. It does nothing unless the
// game is running.
func (g *Game) Step(dt float64) {
	if !g.State.Running() || dt <= 0 {
		return
	}
	ctx := context.Background()
	g.Telemetry.Tick(ctx)
	area := g.Area()

	// Timers
	g.teleportCooldown = max(g.teleportCooldown-dt, 0)
	g.Player.Tick(dt)

	// Ambient
	g.Particles.Update(dt)
	g.World.Update(dt)

	// Player movement and attacks. An open conversation holds the player.
	if g.Conversation == nil {
		dx, dy := g.Input.Axis()
		g.Player.Move(dx, dy, dt, area)

		if g.Input.Consume(render.KeySpace) {
			if p := g.Player.Attack(); p != nil {
				g.PlayerProjectiles = append(g.PlayerProjectiles, p)
				g.Telemetry.Fired(ctx, string(p.Owner))
			}
		}
	}
	g.handleWeaponKeys()

	// Projectiles, then monsters
	g.PlayerProjectiles = advanceProjectiles(g.PlayerProjectiles, dt, area)
	g.MonsterProjectiles = advanceProjectiles(g.MonsterProjectiles, dt, area)
	for _, m := range g.Monsters {
		shots := m.Update(dt, g.Player.Pos, area, g.rng)
		for _, s := range shots {
			g.Telemetry.Fired(ctx, string(s.Owner))
		}
		g.MonsterProjectiles = append(g.MonsterProjectiles, shots...)
	}

	// Contacts
	g.resolvePlayerHits(ctx)
	g.resolvePlayerDamage(ctx)

	if g.Player.Dead() {
		g.State.EndGame()
		g.CloseConversation()
		g.ShowMessage("You have fallen")
		g.Log.Info().Int("score", g.Score).Int("level", g.Progression.Level).Msg("Game over")
		return
	}

	g.maybeSpawnEncounter(ctx)

	// Residents, interactions and content systems
	g.updateNPCs(dt)
	g.handleInteraction()
	g.handleTransitions()
	g.completeQuests(g.Quests.CheckItems(g.Inventory))
	g.handleCrafting(dt)
	g.handlePotion()
	g.updateMessages(dt)
	g.updateMinimap(dt)
	g.UpdateCamera(0, 0)
}

func (g *Game) handleWeaponKeys() {
	switch k, _ := g.Input.ConsumeAny(render.Key1, render.Key2, render.Key3, render.KeyQ); k {
	case render.Key1, render.Key2, render.Key3:
		if g.Player.SelectWeapon(int(k - render.Key1)) {
			g.ShowMessage(g.Player.Weapon().Name + " equipped")
		}
	case render.KeyQ:
		g.Player.CycleWeapon()
		g.ShowMessage(g.Player.Weapon().Name + " equipped")
	}
}

// TogglePause pauses or resumes the run
func (g *Game) TogglePause() {
	paused, err := g.State.TogglePause()
	if err != nil {
		g.Log.Debug().Err(err).Msg("Pause refused")
		return
	}
	g.Input.ClearEdges()
	if paused {
		g.Log.Debug().Msg("Paused")
	} else {
		g.Log.Debug().Msg("Resumed")
	}
}

// EnterCastle moves the player into the castle. Monsters and every
// projectile are discarded.
func (g *Game) EnterCastle() error {
	if err := g.State.EnterCastle(); err != nil {
		return err
	}
	g.Monsters = nil
	g.PlayerProjectiles = nil
	g.MonsterProjectiles = nil
	g.Player.Pos = g.World.Castle.Spawn
	g.teleportCooldown = g.Config.Combat.TeleportCooldown
	g.CloseConversation()

	g.ShowMessage("You enter the castle")
	g.completeQuests(g.Quests.OnVisit("castle"))
	g.refreshMinimap()
	return nil
}

// ExitCastle returns the player to the overworld in front of the castle
// door. Nothing is respawned.
func (g *Game) ExitCastle() error {
	if err := g.State.ExitCastle(); err != nil {
		return err
	}
	g.Player.Pos = g.World.Overworld.Spawn
	g.teleportCooldown = g.Config.Combat.TeleportCooldown
	g.CloseConversation()

	g.ShowMessage("You step back outside")
	g.refreshMinimap()
	return nil
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
	g.Log.Debug().Str("text", text).Msg("Message")
}

func (g *Game) updateMessages(dt float64) {
	active := g.Messages[:0]
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

func (g *Game) updateMinimap(dt float64) {
	g.minimapTimer -= dt
	if g.minimapTimer > 0 {
		return
	}
	g.minimapTimer = minimapInterval
	g.refreshMinimap()
}

func (g *Game) refreshMinimap() {
	area := g.Area()
	scale := 1 / area.Size
	g.Minimap.Player = g.Player.Pos.Scale(scale)
	g.Minimap.Door = area.Door.Scale(scale)
	g.Minimap.Monsters = g.Minimap.Monsters[:0]
	for _, m := range g.Monsters {
		g.Minimap.Monsters = append(g.Minimap.Monsters, m.Pos.Scale(scale))
	}
	g.Minimap.Shrines = g.Minimap.Shrines[:0]
	if area == g.World.Overworld {
		for _, s := range g.World.Shrines {
			if !s.Used {
				g.Minimap.Shrines = append(g.Minimap.Shrines, s.Pos.Scale(scale))
			}
		}
	}
}

// UpdateCamera centres the view on the player, clamped to the area. A zero
// view size keeps the last one.
func (g *Game) UpdateCamera(viewWidth, viewHeight int) {
	if viewWidth > 0 && viewHeight > 0 {
		g.viewWidth, g.viewHeight = viewWidth, viewHeight
	}
	if g.viewWidth == 0 || g.World == nil {
		return
	}
	size := g.Area().Size
	w, h := float64(g.viewWidth), float64(g.viewHeight)

	g.Camera.X = g.Player.Pos.X - w/2
	g.Camera.Y = g.Player.Pos.Y - h/2
	g.Camera.X = max(min(g.Camera.X, size-w), 0)
	g.Camera.Y = max(min(g.Camera.Y, size-h), 0)
	if size < w {
		g.Camera.X = (size - w) / 2
	}
	if size < h {
		g.Camera.Y = (size - h) / 2
	}
}
