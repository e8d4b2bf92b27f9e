package figgie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryChangeChecksNonNegative(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Change(Spade, 3))
	assert.Equal(t, 3, inv.Get(Spade))

	require.NoError(t, inv.Change(Spade, -2))
	assert.Equal(t, 1, inv.Get(Spade))

	err := inv.Change(Spade, -5)
	assert.Error(t, err)
	assert.Equal(t, 1, inv.Get(Spade), "a rejected change must not mutate the inventory")
}

func TestInventoryCountAndTotal(t *testing.T) {
	inv := NewInventory()
	inv.Count([]Card{Spade, Spade, Club, Heart})
	assert.Equal(t, 2, inv.Get(Spade))
	assert.Equal(t, 1, inv.Get(Club))
	assert.Equal(t, 0, inv.Get(Diamond))
	assert.Equal(t, 4, inv.Total())
}

func TestInventoryCloneIsIndependent(t *testing.T) {
	inv := NewInventory()
	inv.Count([]Card{Spade})
	clone := inv.Clone()
	require.NoError(t, clone.Change(Spade, 1))
	assert.Equal(t, 1, inv.Get(Spade))
	assert.Equal(t, 2, clone.Get(Spade))
}

func TestCardPartnerSuitPairing(t *testing.T) {
	assert.Equal(t, Club, Spade.PartnerSuit())
	assert.Equal(t, Spade, Club.PartnerSuit())
	assert.Equal(t, Diamond, Heart.PartnerSuit())
	assert.Equal(t, Heart, Diamond.PartnerSuit())
}

func TestBookResetRestoresSentinels(t *testing.T) {
	b := NewBook()
	assert.True(t, b.Bid.Empty())
	assert.True(t, b.Ask.Empty())
	assert.Equal(t, 0, b.Bid.Price)
	assert.Equal(t, 99, b.Ask.Price)

	p := PlayerID("alice")
	b.Bid = Quote{Price: 5, Owner: &p}
	b.RecordTrade(5)
	b.ResetQuotes()

	assert.True(t, b.Bid.Empty())
	assert.True(t, b.Ask.Empty())
	require.NotNil(t, b.LastTradePrice)
	assert.Equal(t, 5, *b.LastTradePrice)
}

func TestBookCloneIsIndependent(t *testing.T) {
	b := NewBook()
	p := PlayerID("alice")
	b.Bid = Quote{Price: 5, Owner: &p}

	clone := b.Clone()
	other := PlayerID("bob")
	clone.Bid.Owner = &other

	assert.Equal(t, PlayerID("alice"), *b.Bid.Owner)
	assert.Equal(t, PlayerID("bob"), *clone.Bid.Owner)
}
