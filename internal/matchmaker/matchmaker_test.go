package matchmaker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiputravu/figgie/internal/bus"
	"github.com/saiputravu/figgie/internal/figgie"
)

func rosterOfSize(n int) []figgie.PlayerID {
	roster := make([]figgie.PlayerID, n)
	for i := range roster {
		roster[i] = figgie.PlayerID(fmt.Sprintf("P%d", i))
	}
	return roster
}

func newTestMatchmaker(t *testing.T, roster []figgie.PlayerID) *Matchmaker {
	t.Helper()
	mm, err := New(DefaultConfig(), roster, bus.NewOrderBus(), bus.NewEventBus(16), zerolog.Nop())
	require.NoError(t, err)
	return mm
}

func TestNewRejectsRosterSizesThatDoNotDivide40(t *testing.T) {
	_, err := New(DefaultConfig(), []figgie.PlayerID{"a", "b", "c"}, bus.NewOrderBus(), bus.NewEventBus(16), zerolog.Nop())
	assert.Error(t, err)

	for _, n := range []int{2, 4, 5, 8, 10} {
		_, err := New(DefaultConfig(), rosterOfSize(n), bus.NewOrderBus(), bus.NewEventBus(16), zerolog.Nop())
		assert.NoError(t, err, "roster of %d should divide 40 evenly", n)
	}
}

// --- scenario 1: exact cross ---------------------------------------------

func TestScenario_ExactCross(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	mm.inventories["P1"].Count([]figgie.Card{figgie.Spade})
	mm.points["P1"] = 500
	mm.points["P2"] = 500

	mm.handleOrder(figgie.NewOrder("P1", figgie.Spade, figgie.Sell, 10))
	book := mm.books[figgie.Spade]
	require.False(t, book.Ask.Empty())
	assert.Equal(t, 10, book.Ask.Price)
	assert.Equal(t, figgie.PlayerID("P1"), *book.Ask.Owner)

	mm.handleOrder(figgie.NewOrder("P2", figgie.Spade, figgie.Buy, 10))

	assert.Equal(t, 510, mm.points["P1"])
	assert.Equal(t, 490, mm.points["P2"])
	assert.Equal(t, 0, mm.inventories["P1"].Get(figgie.Spade))
	assert.Equal(t, 1, mm.inventories["P2"].Get(figgie.Spade))

	for _, c := range figgie.Suits {
		b := mm.books[c]
		assert.True(t, b.Bid.Empty(), "book %s bid should be reset", c)
		assert.True(t, b.Ask.Empty(), "book %s ask should be reset", c)
	}
	require.NotNil(t, mm.books[figgie.Spade].LastTradePrice)
	assert.Equal(t, 10, *mm.books[figgie.Spade].LastTradePrice)
}

// --- scenario 2: improve-don't-cross --------------------------------------

func TestScenario_ImproveDoesNotCrossOnTie(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	mm.points["P1"] = 500
	mm.points["P2"] = 500

	mm.handleOrder(figgie.NewOrder("P1", figgie.Club, figgie.Buy, 3))
	assert.Equal(t, 3, mm.books[figgie.Club].Bid.Price)
	assert.Equal(t, figgie.PlayerID("P1"), *mm.books[figgie.Club].Bid.Owner)

	mm.handleOrder(figgie.NewOrder("P2", figgie.Club, figgie.Buy, 3))
	assert.Equal(t, figgie.PlayerID("P1"), *mm.books[figgie.Club].Bid.Owner, "a tie must not replace the resting bid")

	mm.handleOrder(figgie.NewOrder("P2", figgie.Club, figgie.Buy, 4))
	assert.Equal(t, 4, mm.books[figgie.Club].Bid.Price)
	assert.Equal(t, figgie.PlayerID("P2"), *mm.books[figgie.Club].Bid.Owner)
	assert.Nil(t, mm.books[figgie.Club].LastTradePrice, "no trade should have occurred")
}

// --- scenario 3: sell without inventory ------------------------------------

func TestScenario_SellWithoutInventoryIsRejected(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	before := mm.books[figgie.Heart]

	mm.handleOrder(figgie.NewOrder("P1", figgie.Heart, figgie.Sell, 5))

	assert.Equal(t, before, mm.books[figgie.Heart])
	assert.Equal(t, 0, mm.inventories["P1"].Get(figgie.Heart))
}

// --- scenario 4: global reset ----------------------------------------------

func TestScenario_TradeResetsAllBooksGlobally(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2", "P3", "P4"})
	mm.points["P1"] = 500
	mm.points["P2"] = 500
	mm.points["P3"] = 500
	mm.inventories["P1"].Count([]figgie.Card{figgie.Spade})
	mm.inventories["P3"].Count([]figgie.Card{figgie.Heart})

	mm.handleOrder(figgie.NewOrder("P1", figgie.Spade, figgie.Sell, 5))
	mm.handleOrder(figgie.NewOrder("P3", figgie.Heart, figgie.Sell, 6))
	require.False(t, mm.books[figgie.Heart].Ask.Empty())

	mm.handleOrder(figgie.NewOrder("P2", figgie.Spade, figgie.Buy, 5))

	assert.True(t, mm.books[figgie.Heart].Ask.Empty(), "unrelated book's ask must be reset too")
	assert.True(t, mm.books[figgie.Heart].Bid.Empty())
}

// --- scenario 5: drain -------------------------------------------------------

func TestScenario_DrainPreventsSecondTradeOnStaleQuotes(t *testing.T) {
	orders := bus.NewOrderBus()
	mm, err := New(DefaultConfig(), []figgie.PlayerID{"P1", "P2", "P3", "P4"}, orders, bus.NewEventBus(16), zerolog.Nop())
	require.NoError(t, err)
	mm.points["P1"] = 500
	mm.points["P2"] = 500
	mm.points["P3"] = 500
	mm.inventories["P1"].Count([]figgie.Card{figgie.Spade})

	// Two buy orders queue up against the same resting ask.
	orders.Send(figgie.NewOrder("P2", figgie.Spade, figgie.Buy, 5))
	orders.Send(figgie.NewOrder("P3", figgie.Spade, figgie.Buy, 5))

	mm.handleOrder(figgie.NewOrder("P1", figgie.Spade, figgie.Sell, 5))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	order, ok := mm.orders.Recv(ctx)
	cancel()
	require.True(t, ok, "the first queued buy should still be matched")
	mm.handleOrder(order)

	assert.Equal(t, 1, mm.inventories["P2"].Get(figgie.Spade))
	assert.Equal(t, 0, mm.inventories["P3"].Get(figgie.Spade), "the second buy must have been drained, not matched")
	assert.Equal(t, 0, orders.Len())
}

// --- scenario 6: settlement tie ---------------------------------------------

func TestScenario_SettlementTieSplitsPotEvenly(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2", "P3", "P4"})
	mm.goalSuit = figgie.Spade
	mm.pot = 200
	for _, p := range []figgie.PlayerID{"P1", "P2", "P3", "P4"} {
		mm.points[p] = 0
	}

	mm.inventories["P1"].Count([]figgie.Card{figgie.Spade, figgie.Spade, figgie.Spade})
	mm.inventories["P2"].Count([]figgie.Card{figgie.Spade, figgie.Spade, figgie.Spade})
	mm.inventories["P3"].Count([]figgie.Card{figgie.Spade, figgie.Spade})
	mm.inventories["P4"].Count([]figgie.Card{figgie.Spade, figgie.Spade})

	result := mm.settle()

	assert.ElementsMatch(t, []figgie.PlayerID{"P1", "P2"}, result.PotWinners)
	assert.Equal(t, 50, result.PotSplit)
	assert.Equal(t, 80, mm.points["P1"])
	assert.Equal(t, 80, mm.points["P2"])
	assert.Equal(t, 20, mm.points["P3"])
	assert.Equal(t, 20, mm.points["P4"])
}

// --- boundary cases ----------------------------------------------------------

func TestZeroPriceOrderIsDropped(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	before := mm.books[figgie.Diamond]

	mm.handleOrder(figgie.NewOrder("P1", figgie.Diamond, figgie.Buy, 0))

	assert.Equal(t, before, mm.books[figgie.Diamond])
}

func TestBuyAtAskExactlyCrosses(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	mm.points["P1"] = 500
	mm.points["P2"] = 500
	mm.inventories["P1"].Count([]figgie.Card{figgie.Club})

	mm.handleOrder(figgie.NewOrder("P1", figgie.Club, figgie.Sell, 8))
	mm.handleOrder(figgie.NewOrder("P2", figgie.Club, figgie.Buy, 8))

	assert.Equal(t, 1, mm.inventories["P2"].Get(figgie.Club))
}

func TestSellAtBidExactlyCrosses(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	mm.points["P1"] = 500
	mm.points["P2"] = 500
	mm.inventories["P2"].Count([]figgie.Card{figgie.Heart})

	mm.handleOrder(figgie.NewOrder("P1", figgie.Heart, figgie.Buy, 8))
	mm.handleOrder(figgie.NewOrder("P2", figgie.Heart, figgie.Sell, 8))

	assert.Equal(t, 1, mm.inventories["P1"].Get(figgie.Heart))
}

func TestBuySolvencyCheckRejectsUnaffordableCross(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	mm.points["P1"] = 500
	mm.points["P2"] = 3 // cannot afford the ask
	mm.inventories["P1"].Count([]figgie.Card{figgie.Diamond})

	mm.handleOrder(figgie.NewOrder("P1", figgie.Diamond, figgie.Sell, 10))
	mm.handleOrder(figgie.NewOrder("P2", figgie.Diamond, figgie.Buy, 10))

	assert.Equal(t, 3, mm.points["P2"], "a buyer that can't afford the cross must not be charged")
	assert.Equal(t, 0, mm.inventories["P2"].Get(figgie.Diamond))
	assert.False(t, mm.books[figgie.Diamond].Ask.Empty(), "the resting ask must survive an unaffordable cross attempt")
}

// --- deal invariants ---------------------------------------------------------

func TestDealInvariantsHoldForEverySupportedRosterSize(t *testing.T) {
	for _, n := range []int{2, 4, 5, 8, 10} {
		roster := rosterOfSize(n)
		mm := newTestMatchmaker(t, roster)
		mm.pickCommonSuit()
		mm.dealInventories()

		totals := make(map[figgie.Card]int)
		for _, p := range roster {
			for _, c := range figgie.Suits {
				got := mm.inventories[p].Get(c)
				assert.GreaterOrEqual(t, got, 0)
				totals[c] += got
			}
		}

		counts := make(map[int]int)
		for _, c := range figgie.Suits {
			counts[totals[c]]++
		}
		assert.Equal(t, 1, counts[12], "exactly one suit dealt 12 (the common suit)")
		assert.Equal(t, 1, counts[8], "exactly one suit dealt 8")
		assert.Equal(t, 2, counts[10], "exactly two suits dealt 10")
		assert.Equal(t, 10, totals[mm.goalSuit], "goal suit must always land in the 10-count group")
	}
}

func TestAnteLeniencyForShortPlayer(t *testing.T) {
	mm := newTestMatchmaker(t, []figgie.PlayerID{"P1", "P2"})
	mm.points["P1"] = 10 // ante for 2 players is 100
	mm.points["P2"] = 500

	ante, pot := mm.collectAnte()
	assert.Equal(t, 100, ante)
	assert.Equal(t, 0, mm.points["P1"])
	assert.Equal(t, 400, mm.points["P2"])
	assert.Equal(t, 10+100, pot)
}
