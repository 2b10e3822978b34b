// Package dialogue models NPC conversations. Each NPC offers a fixed set of
// services; a Service is a closed sum type so every kind is handled
// explicitly when performed.
package dialogue

import (
	"errors"
	"fmt"
)

// Service is something an NPC can do for the player. The set of
// implementations is closed: Shop, Heal and QuestOffer.
type Service interface {
	isService()
}

// Offer is one item for sale
type Offer struct {
	ItemID string
	Price  int
}

// Shop sells items for gold
type Shop struct {
	Stock []Offer
}

// Heal restores the player to full health for a fee
type Heal struct {
	Cost int
}

// QuestOffer hands out a quest
type QuestOffer struct {
	QuestID string
}

func (Shop) isService()       {}
func (Heal) isService()       {}
func (QuestOffer) isService() {}

// Context is what performing a service needs from the game
type Context interface {
	Gold() int
	SpendGold(amount int) bool
	GiveItem(itemID string, count int) bool
	ItemName(itemID string) string

	// HealFull restores health and returns the amount restored
	HealFull() int

	// AcceptQuest starts a quest, failing if it is unknown or already taken
	AcceptQuest(questID string) (title string, err error)
}

// Option is one selectable line in a conversation
type Option struct {
	Label   string
	Service Service
	Offer   int // Index into Shop.Stock, -1 otherwise
}

// Options flattens services into selectable lines. Each shop offer becomes
// its own option.
func Options(services []Service, ctx Context) []Option {
	var opts []Option
	for _, svc := range services {
		switch s := svc.(type) {
		case Shop:
			for i, o := range s.Stock {
				opts = append(opts, Option{
					Label:   fmt.Sprintf("Buy %s (%d gold)", ctx.ItemName(o.ItemID), o.Price),
					Service: s,
					Offer:   i,
				})
			}
		case Heal:
			opts = append(opts, Option{Label: fmt.Sprintf("Heal (%d gold)", s.Cost), Service: s, Offer: -1})
		case QuestOffer:
			opts = append(opts, Option{Label: "Ask for work", Service: s, Offer: -1})
		default:
			panic(fmt.Sprintf("dialogue: unhandled service %T", svc))
		}
	}
	return opts
}

// Errors returned by Perform
var (
	ErrNotEnoughGold = errors.New("not enough gold")
	ErrInventoryFull = errors.New("inventory full")
	ErrFullHealth    = errors.New("already at full health")
	ErrBadOption     = errors.New("invalid option")
)

// Perform carries out an option and returns a message for the player.
func Perform(opt Option, ctx Context) (string, error) {
	switch s := opt.Service.(type) {
	case Shop:
		if opt.Offer < 0 || opt.Offer >= len(s.Stock) {
			return "", ErrBadOption
		}
		o := s.Stock[opt.Offer]
		if ctx.Gold() < o.Price {
			return "", ErrNotEnoughGold
		}
		if !ctx.GiveItem(o.ItemID, 1) {
			return "", ErrInventoryFull
		}
		ctx.SpendGold(o.Price)
		return fmt.Sprintf("Bought %s", ctx.ItemName(o.ItemID)), nil

	case Heal:
		if ctx.Gold() < s.Cost {
			return "", ErrNotEnoughGold
		}
		if ctx.HealFull() == 0 {
			return "", ErrFullHealth
		}
		ctx.SpendGold(s.Cost)
		return "You feel restored", nil

	case QuestOffer:
		title, err := ctx.AcceptQuest(s.QuestID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Quest accepted: %s", title), nil

	default:
		return "", fmt.Errorf("unhandled service %T", opt.Service)
	}
}

// Conversation is an open dialogue with one NPC
type Conversation struct {
	Speaker  string
	Greeting string
	Options  []Option
	Selected int
}

// Open starts a conversation
func Open(speaker, greeting string, services []Service, ctx Context) *Conversation {
	return &Conversation{
		Speaker:  speaker,
		Greeting: greeting,
		Options:  Options(services, ctx),
	}
}

// Move shifts the selection by delta, wrapping around.
func (c *Conversation) Move(delta int) {
	n := len(c.Options)
	if n == 0 {
		return
	}
	c.Selected = ((c.Selected+delta)%n + n) % n
}

// Confirm performs the selected option.
func (c *Conversation) Confirm(ctx Context) (string, error) {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return "", ErrBadOption
	}
	return Perform(c.Options[c.Selected], ctx)
}
