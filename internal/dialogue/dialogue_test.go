package dialogue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCtx struct {
	gold     int
	items    map[string]int
	full     bool
	capacity int
	quests   map[string]bool
}

func newFakeCtx(gold int) *fakeCtx {
	return &fakeCtx{gold: gold, items: map[string]int{}, capacity: 10, quests: map[string]bool{}}
}

func (f *fakeCtx) Gold() int { return f.gold }
func (f *fakeCtx) SpendGold(n int) bool {
	if n > f.gold {
		return false
	}
	f.gold -= n
	return true
}
func (f *fakeCtx) GiveItem(id string, n int) bool {
	if len(f.items) >= f.capacity {
		return false
	}
	f.items[id] += n
	return true
}
func (f *fakeCtx) ItemName(id string) string { return "<" + id + ">" }
func (f *fakeCtx) HealFull() int {
	if f.full {
		return 0
	}
	f.full = true
	return 30
}
func (f *fakeCtx) AcceptQuest(id string) (string, error) {
	if f.quests[id] {
		return "", errors.New("already accepted")
	}
	f.quests[id] = true
	return "Title " + id, nil
}

func services() []Service {
	return []Service{
		Shop{Stock: []Offer{{ItemID: "potion", Price: 10}, {ItemID: "arrow", Price: 2}}},
		Heal{Cost: 5},
		QuestOffer{QuestID: "slimes"},
	}
}

func TestOptions_FlattensShop(t *testing.T) {
	opts := Options(services(), newFakeCtx(0))
	require.Len(t, opts, 4)
	assert.Equal(t, "Buy <potion> (10 gold)", opts[0].Label)
	assert.Equal(t, 1, opts[1].Offer)
	assert.Equal(t, "Heal (5 gold)", opts[2].Label)
	assert.Equal(t, -1, opts[3].Offer)
}

func TestPerform_Shop(t *testing.T) {
	ctx := newFakeCtx(12)
	opts := Options(services(), ctx)

	msg, err := Perform(opts[0], ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bought <potion>", msg)
	assert.Equal(t, 2, ctx.gold)
	assert.Equal(t, 1, ctx.items["potion"])

	_, err = Perform(opts[0], ctx)
	assert.ErrorIs(t, err, ErrNotEnoughGold)
	assert.Equal(t, 2, ctx.gold)

	ctx.capacity = 0
	_, err = Perform(opts[1], ctx)
	assert.ErrorIs(t, err, ErrInventoryFull)
	assert.Equal(t, 2, ctx.gold, "gold is not spent when the item cannot be given")
}

func TestPerform_Heal(t *testing.T) {
	ctx := newFakeCtx(20)
	opt := Option{Service: Heal{Cost: 5}, Offer: -1}

	_, err := Perform(opt, ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, ctx.gold)

	_, err = Perform(opt, ctx)
	assert.ErrorIs(t, err, ErrFullHealth)
	assert.Equal(t, 15, ctx.gold)
}

func TestPerform_QuestOffer(t *testing.T) {
	ctx := newFakeCtx(0)
	opt := Option{Service: QuestOffer{QuestID: "q1"}, Offer: -1}

	msg, err := Perform(opt, ctx)
	require.NoError(t, err)
	assert.Equal(t, "Quest accepted: Title q1", msg)

	_, err = Perform(opt, ctx)
	assert.Error(t, err)
}

func TestPerform_BadShopIndex(t *testing.T) {
	_, err := Perform(Option{Service: Shop{}, Offer: 3}, newFakeCtx(100))
	assert.ErrorIs(t, err, ErrBadOption)
}

func TestConversation_SelectionWraps(t *testing.T) {
	ctx := newFakeCtx(100)
	c := Open("Smith", "Hello", services(), ctx)
	c.Move(-1)
	assert.Equal(t, 3, c.Selected)
	c.Move(2)
	assert.Equal(t, 1, c.Selected)

	msg, err := c.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bought <arrow>", msg)

	empty := Open("Mute", "...", nil, ctx)
	empty.Move(1)
	_, err = empty.Confirm(ctx)
	assert.ErrorIs(t, err, ErrBadOption)
}
