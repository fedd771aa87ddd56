package main

import (
	"testing"
	"time"
)

func submitBid(cfg *Config, reg *SessionRegistry, c *Client, gameID string, amount int) {
	send(cfg, reg, c, ClientMessage{Type: "submitFinalBid", GameID: gameID, BidAmount: amount})
}

func TestBidResolutionPicksHigherBidder(t *testing.T) {
	cfg := testConfig()
	reg, c1, c2, gameID := startBiddingGame(t, cfg)

	submitBid(cfg, reg, c1, gameID, 4)
	recv[OpponentHasBidMessage](t, c2)

	submitBid(cfg, reg, c2, gameID, 2)

	r1 := recv[BiddingResolvedMessage](t, c1)
	r2 := recv[BiddingResolvedMessage](t, c2)

	if r1.WinnerID != "p1" || r2.WinnerID != "p1" {
		t.Fatalf("winner = %q/%q, want p1", r1.WinnerID, r2.WinnerID)
	}
	if r1.BidsTied || r2.BidsTied {
		t.Fatal("unequal bids must not tie")
	}

	// Both sides pay their bid and collect the award, winner included.
	if r1.YourNewCoinTotal != 10-4+2 {
		t.Fatalf("winner total = %d, want 8", r1.YourNewCoinTotal)
	}
	if r2.YourNewCoinTotal != 10-2+2 {
		t.Fatalf("loser total = %d, want 10", r2.YourNewCoinTotal)
	}

	// Only the winner is invited to choose.
	recv[EnableActionChoiceMessage](t, c1)
}

func TestTiedBidsRestartRound(t *testing.T) {
	cfg := testConfig()
	reg, c1, c2, gameID := startBiddingGame(t, cfg)

	submitBid(cfg, reg, c1, gameID, 3)
	submitBid(cfg, reg, c2, gameID, 3)

	r1 := recv[BiddingResolvedMessage](t, c1)
	r2 := recv[BiddingResolvedMessage](t, c2)

	if !r1.BidsTied || !r2.BidsTied {
		t.Fatal("equal bids must tie")
	}
	if r1.WinnerID != "" || r2.WinnerID != "" {
		t.Fatalf("tie must not set a winner, got %q/%q", r1.WinnerID, r2.WinnerID)
	}
	if r1.YourNewCoinTotal != 9 || r2.YourNewCoinTotal != 9 {
		t.Fatalf("totals = %d/%d, want 9/9", r1.YourNewCoinTotal, r2.YourNewCoinTotal)
	}

	// A fresh round opens on its own after the tie delay.
	state := recv[BiddingPhaseStateMessage](t, c1)
	if state.MyInitialCoins != 9 {
		t.Fatalf("restarted round coins = %d, want 9", state.MyInitialCoins)
	}
	recv[BiddingPhaseStateMessage](t, c2)
}

func TestBidClampingIsTotal(t *testing.T) {
	cfg := testConfig()
	reg, c1, c2, gameID := startBiddingGame(t, cfg)

	// Way over the balance clamps to the balance, negative clamps to zero.
	submitBid(cfg, reg, c1, gameID, 999)
	submitBid(cfg, reg, c2, gameID, -5)

	r1 := recv[BiddingResolvedMessage](t, c1)
	r2 := recv[BiddingResolvedMessage](t, c2)

	if r1.WinnerID != "p1" {
		t.Fatalf("winner = %q, want p1", r1.WinnerID)
	}
	if r1.YourNewCoinTotal != 10-10+2 {
		t.Fatalf("clamped winner total = %d, want 2", r1.YourNewCoinTotal)
	}
	if r2.YourNewCoinTotal != 10-0+2 {
		t.Fatalf("clamped loser total = %d, want 12", r2.YourNewCoinTotal)
	}
}

func TestDuplicateBidIsIgnored(t *testing.T) {
	cfg := testConfig()
	reg, c1, c2, gameID := startBiddingGame(t, cfg)

	submitBid(cfg, reg, c1, gameID, 5)
	submitBid(cfg, reg, c1, gameID, 1) // silently dropped, first bid stands
	submitBid(cfg, reg, c2, gameID, 0)

	r1 := recv[BiddingResolvedMessage](t, c1)
	if r1.WinnerID != "p1" {
		t.Fatalf("winner = %q, want p1", r1.WinnerID)
	}
	if r1.YourNewCoinTotal != 10-5+2 {
		t.Fatalf("total = %d, want 7 (original bid of 5)", r1.YourNewCoinTotal)
	}
}

func TestReadyIgnoredDuringCardSelection(t *testing.T) {
	cfg := testConfig()
	reg, c1, c2, gameID := newPair(t, cfg)

	// Readiness before any series is confirmed must not open a round.
	send(cfg, reg, c1, ClientMessage{Type: "clientReadyForBidding", GameID: gameID})
	send(cfg, reg, c2, ClientMessage{Type: "clientReadyForBidding", GameID: gameID})
	time.Sleep(50 * time.Millisecond)

drain:
	for {
		select {
		case msg := <-c1.send:
			if _, ok := msg.(BiddingPhaseStateMessage); ok {
				t.Fatal("bidding round opened before any series was confirmed")
			}
		default:
			break drain
		}
	}

	// The normal path still works afterwards.
	send(cfg, reg, c1, ClientMessage{Type: "playerSelectedSeries", GameID: gameID, Series: spadesSeries()})
	send(cfg, reg, c2, ClientMessage{Type: "playerSelectedSeries", GameID: gameID, Series: spadesSeries()})
	recv[NavigateToBiddingMessage](t, c1)
	recv[NavigateToBiddingMessage](t, c2)

	send(cfg, reg, c1, ClientMessage{Type: "clientReadyForBidding", GameID: gameID})
	send(cfg, reg, c2, ClientMessage{Type: "clientReadyForBidding", GameID: gameID})
	recv[BiddingPhaseStateMessage](t, c1)
	recv[BiddingPhaseStateMessage](t, c2)
}

func TestLowCoinThresholdHidesExactBalance(t *testing.T) {
	cfg := testConfig()
	reg, c1, c2, gameID := startBiddingGame(t, cfg)

	// Drain p1 down to the threshold: bids 10 vs 0 leaves p1 with 2 coins.
	submitBid(cfg, reg, c1, gameID, 10)
	submitBid(cfg, reg, c2, gameID, 0)

	r1 := recv[BiddingResolvedMessage](t, c1)
	r2 := recv[BiddingResolvedMessage](t, c2)

	if !r2.OpponentNewLowCoinsStatus {
		t.Fatalf("p2 should see opponent flagged low at %d coins", r1.YourNewCoinTotal)
	}
	if r1.OpponentNewLowCoinsStatus {
		t.Fatal("p1 should not see a 12-coin opponent flagged low")
	}
}
