package game

// Choice is a move in the simulated match game.
type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

var Choices = []Choice{Rock, Paper, Scissors}

const (
	ResultWin  = "win"
	ResultLose = "lose"
	ResultDraw = "draw"
)

// Beats returns the choice the given one defeats.
func Beats(c Choice) Choice {
	switch c {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	}
	return ""
}

// DetermineWinner resolves a round from the local player's perspective.
func DetermineWinner(player, opponent Choice) string {
	if player == opponent {
		return ResultDraw
	}
	if Beats(player) == opponent {
		return ResultWin
	}
	return ResultLose
}

// Payout is the balance delta for a resolved round: the winner takes the
// stake, a draw moves nothing.
func Payout(result string, stake int) int {
	switch result {
	case ResultWin:
		return stake
	case ResultLose:
		return -stake
	}
	return 0
}
