package models

// SlotOutcome classifies a slot machine spin
type SlotOutcome string

const (
	SlotJackpot  SlotOutcome = "jackpot"
	SlotTwoMatch SlotOutcome = "two_match"
	SlotLoss     SlotOutcome = "loss"
)

// SlotResult is the settled outcome of a slot machine spin
type SlotResult struct {
	Symbols    [3]string
	Outcome    SlotOutcome
	Multiplier float64
	Bet        int64
	Payout     int64 // amount added on a win, 0 on a loss
	NewBalance int64
}

// DiceOutcome classifies a dice duel
type DiceOutcome string

const (
	DiceWin  DiceOutcome = "win"
	DiceLoss DiceOutcome = "loss"
	DicePush DiceOutcome = "push"
)

// DiceResult is the settled outcome of a dice duel against the house
type DiceResult struct {
	PlayerRoll int
	HouseRoll  int
	Outcome    DiceOutcome
	Multiplier float64
	Bet        int64
	Payout     int64 // stake plus net winnings on a win
	NewBalance int64
}

// CoinSide is one face of the coin
type CoinSide string

const (
	CoinHeads CoinSide = "heads"
	CoinTails CoinSide = "tails"
)

// CoinFlipResult is the settled outcome of a coin flip
type CoinFlipResult struct {
	Guess      CoinSide
	Landed     CoinSide
	Won        bool
	Multiplier float64
	Bet        int64
	Payout     int64
	NewBalance int64
}

// BlackjackOutcome classifies a settled blackjack hand
type BlackjackOutcome string

const (
	BlackjackWin     BlackjackOutcome = "win"
	BlackjackNatural BlackjackOutcome = "blackjack"
	BlackjackPush    BlackjackOutcome = "push"
	BlackjackLoss    BlackjackOutcome = "loss"
	BlackjackBust    BlackjackOutcome = "bust"
)

// BlackjackResult is the settled outcome of a blackjack hand
type BlackjackResult struct {
	PlayerHand  []int
	DealerHand  []int
	PlayerTotal int
	DealerTotal int
	Outcome     BlackjackOutcome
	Doubled     bool
	Multiplier  float64
	Stake       int64 // bet, doubled after a double down
	Payout      int64 // amount added on a win
	NewBalance  int64
}

// Mutated reports whether the duel changed the ledger balance; a push
// leaves the balance alone but still counts a play.
func (r *DiceResult) Mutated() bool { return r.Outcome != DicePush }

// Mutated reports whether the hand changed the ledger balance
func (r *BlackjackResult) Mutated() bool { return r.Outcome != BlackjackPush }
