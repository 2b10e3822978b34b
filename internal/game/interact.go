package game

import (
	"errors"
	"fmt"
	"strconv"

	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/core/geom"
	"chosenoffset.com/pixelrealm/internal/crafting"
	"chosenoffset.com/pixelrealm/internal/dialogue"
	"chosenoffset.com/pixelrealm/internal/entity"
	"chosenoffset.com/pixelrealm/internal/inventory"
	"chosenoffset.com/pixelrealm/internal/render"
)

func (g *Game) updateNPCs(dt float64) {
	if g.State.Location != gamestate.Castle {
		return
	}
	for _, n := range g.NPCs {
		n.Update(dt, g.Player.Pos, g.Config.World.InteractDist, g.World.Castle, g.rng)
	}
}

// handleInteraction drives an open conversation, or on E talks to the
// nearest resident or activates a shrine.
func (g *Game) handleInteraction() {
	if g.Conversation != nil {
		g.handleConversation()
		return
	}
	if !g.Input.Consume(render.KeyE) {
		return
	}
	reach := g.Config.World.InteractDist

	if g.State.Location == gamestate.Castle {
		if n := g.nearestNPC(reach); n != nil {
			g.talkingTo = n
			g.Conversation = dialogue.Open(n.Name, n.Greeting, g.servicesOf(n), dialogueContext{g})
			g.Log.Debug().Str("npc", n.ID).Msg("Conversation opened")
		}
		return
	}

	s := g.World.ShrineNear(g.Player.Pos, reach)
	if s == nil || !g.World.UseShrine(s) {
		return
	}
	g.Player.AddBuff(s.Buff, s.Duration)
	g.Score += g.Config.Scoring.PerShrine
	g.Particles.Burst(s.Pos, 24, 90, 0.8, shrineColor)
	g.ShowMessage(fmt.Sprintf("The shrine grants %s for %.0fs", s.Buff, s.Duration))
	g.Log.Debug().Int("shrine", s.ID).Str("buff", string(s.Buff)).Msg("Shrine used")
}

func (g *Game) nearestNPC(reach float64) *entity.NPC {
	var best *entity.NPC
	bestD := 0.0
	for _, n := range g.NPCs {
		if !n.InReach(g.Player.Pos, reach) {
			continue
		}
		d := geom.DistanceSquared(n.Pos, g.Player.Pos)
		if best == nil || d < bestD {
			best, bestD = n, d
		}
	}
	return best
}

func (g *Game) handleConversation() {
	c := g.Conversation
	switch k, _ := g.Input.ConsumeAny(render.KeyUp, render.KeyW, render.KeyDown, render.KeyS, render.KeyEnter, render.KeyE); k {
	case render.KeyUp, render.KeyW:
		c.Move(-1)
	case render.KeyDown, render.KeyS:
		c.Move(1)
	case render.KeyEnter, render.KeyE:
		msg, err := c.Confirm(dialogueContext{g})
		if err != nil {
			g.ShowMessage(describeRefusal(err))
			return
		}
		g.ShowMessage(msg)
		// Quest offers taken are no longer listed
		c.Options = dialogue.Options(g.servicesOf(g.talkingTo), dialogueContext{g})
		c.Move(0)
	}
}

// CloseConversation ends the open conversation, if any
func (g *Game) CloseConversation() bool {
	if g.Conversation == nil {
		return false
	}
	g.Conversation = nil
	g.talkingTo = nil
	return true
}

// servicesOf lists what n offers right now. Quests already taken or done
// are left out.
func (g *Game) servicesOf(n *entity.NPC) []dialogue.Service {
	if n == nil {
		return nil
	}
	var out []dialogue.Service
	for _, s := range n.Services {
		if q, ok := s.(dialogue.QuestOffer); ok && !g.questOffered(q.QuestID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (g *Game) questOffered(id string) bool {
	for _, q := range g.Quests.Available() {
		if q.ID == id {
			return true
		}
	}
	return false
}

func describeRefusal(err error) string {
	switch {
	case errors.Is(err, dialogue.ErrNotEnoughGold):
		return "Not enough gold"
	case errors.Is(err, dialogue.ErrInventoryFull):
		return "Your pack is full"
	case errors.Is(err, dialogue.ErrFullHealth):
		return "You are already at full health"
	default:
		return err.Error()
	}
}

// handleTransitions moves through the castle door or exit when the player
// stands on it and the teleport cooldown has run out.
func (g *Game) handleTransitions() {
	if g.teleportCooldown > 0 {
		return
	}
	door := g.Area().Door
	if !geom.Within(g.Player.Pos, door, g.Config.World.DoorRadius) {
		return
	}
	var err error
	switch g.State.Location {
	case gamestate.Overworld:
		err = g.EnterCastle()
	case gamestate.Castle:
		err = g.ExitCastle()
	}
	if err != nil {
		g.Log.Warn().Err(err).Msg("Transition refused")
	}
}

// handleCrafting starts or cancels a recipe on C and advances the timer
func (g *Game) handleCrafting(dt float64) {
	if g.Input.Consume(render.KeyC) {
		switch g.Crafter.State() {
		case crafting.InProgress:
			if r, err := g.Crafter.Cancel(); err == nil {
				g.ShowMessage("Stopped crafting " + g.Library.DisplayName(r.Output.ItemID))
			}
		case crafting.Idle:
			r, ok := g.Crafter.FirstAvailable()
			if !ok {
				g.ShowMessage("Nothing to craft")
				break
			}
			if _, err := g.Crafter.Start(r.ID); err != nil {
				g.ShowMessage("Cannot craft: " + err.Error())
				break
			}
			g.ShowMessage("Crafting " + g.Library.DisplayName(r.Output.ItemID))
		}
	}

	if done := g.Crafter.Step(dt); done != nil {
		g.ShowMessage(fmt.Sprintf("Crafted %d %s", done.Output.Count, g.Library.DisplayName(done.Output.ItemID)))
	}
}

// handlePotion drinks the strongest healing consumable on H
func (g *Game) handlePotion() {
	if !g.Input.Consume(render.KeyH) {
		return
	}
	if g.Player.Health >= g.Player.MaxHealth {
		g.ShowMessage("You are already at full health")
		return
	}
	var best *inventory.Item
	for _, slot := range g.Inventory.Items() {
		it := g.Library.Get(slot.ItemID)
		if it == nil || it.Kind != inventory.KindConsumable || it.Heal <= 0 {
			continue
		}
		if best == nil || it.Heal > best.Heal {
			best = it
		}
	}
	if best == nil {
		g.ShowMessage("No healing items")
		return
	}
	g.Inventory.Remove(best.ID, 1)
	healed := g.Player.Heal(best.Heal)
	g.ShowMessage(fmt.Sprintf("%s restores %d health", best.Name, healed))
}

// dialogueContext lets dialogue services act on the game
type dialogueContext struct {
	g *Game
}

func (c dialogueContext) Gold() int {
	return c.g.Inventory.Count(inventory.Gold)
}

func (c dialogueContext) SpendGold(amount int) bool {
	return c.g.Inventory.Remove(inventory.Gold, amount)
}

func (c dialogueContext) GiveItem(itemID string, count int) bool {
	if !c.g.Inventory.CanAdd(itemID, count) {
		return false
	}
	return c.g.Inventory.Add(itemID, count) == count
}

func (c dialogueContext) ItemName(itemID string) string {
	return c.g.Library.DisplayName(itemID)
}

func (c dialogueContext) HealFull() int {
	return c.g.Player.Heal(c.g.Player.MaxHealth)
}

func (c dialogueContext) AcceptQuest(questID string) (string, error) {
	q, err := c.g.Quests.Accept(questID)
	if err != nil {
		return "", err
	}
	c.g.Log.Info().Str("quest", q.ID).Msg("Quest accepted")
	return q.Title, nil
}

func shrineKey(id int) string {
	return strconv.Itoa(id)
}
