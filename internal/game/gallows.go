package game

// FrameHeight is the number of lines in every gallows frame.
const FrameHeight = 7

// frames[i] is the gallows drawn after i wrong guesses. All rows are the same width
// so text can be placed to the right of them.
var frames = [MaxWrong + 1][FrameHeight]string{
	{
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		"                 ",
	},
	{
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		" ────┴───────────",
	},
	{
		"     ┌           ",
		"     │           ",
		"     │           ",
		"     │           ",
		"     │           ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │           ",
		"     │           ",
		"     │           ",
		"     │           ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │     O     ",
		"     │           ",
		"     │           ",
		"     │           ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │     O     ",
		"     │     |     ",
		"     │           ",
		"     │           ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │     O     ",
		"     │    /|     ",
		"     │           ",
		"     │           ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │     O     ",
		"     │    /|\\    ",
		"     │           ",
		"     │           ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │     O     ",
		"     │    /|\\    ",
		"     │     |     ",
		"     │           ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │     O     ",
		"     │    /|\\    ",
		"     │     |     ",
		"     │    /      ",
		"     │           ",
		" ────┴───────────",
	},
	{
		"     ┌─────┐     ",
		"     │     O     ",
		"     │    /|\\    ",
		"     │     |     ",
		"     │    / \\    ",
		"     │           ",
		" ────┴───────────",
	},
}

// Frame returns the gallows for the given wrong-guess count, clamped to [0, MaxWrong].
func Frame(wrong int) [FrameHeight]string {
	if wrong < 0 {
		wrong = 0
	}
	if wrong > MaxWrong {
		wrong = MaxWrong
	}
	return frames[wrong]
}
