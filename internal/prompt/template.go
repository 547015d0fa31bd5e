package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-llm-arena/internal/apperror"
)

// moveRequestTemplate is the fixed move-request prompt. The recognized
// placeholders are {symbol}, {opponent_symbol}, {rows}, {moves_history}
// and {layout}; everything else is sent to the model verbatim.
const moveRequestTemplate = `You are playing Tic Tac Toe. Your symbol is "{symbol}" and your opponent's symbol is "{opponent_symbol}".

The board is {rows}x{rows}. Rows and columns are numbered from 0.

Moves played so far:
{moves_history}

Current board layout:
{layout}

Choose your next move with these priorities, in strict order:
1. If any empty cell completes {rows} of your "{symbol}" symbols in a row, TAKE THAT MOVE IMMEDIATELY.
2. If your opponent "{opponent_symbol}" could win on their next move, block them.
3. Otherwise pick the strongest strategic move available.

You win by placing {rows} of your symbols in a row: horizontally, vertically, or diagonally.

Reply with a single JSON object of exactly this shape, with no additional text before or after it:
{
    "move": {
        "row": <row number>,
        "col": <column number>
    }
}`

// Params carries one value per template placeholder.
type Params struct {
	Symbol         string
	OpponentSymbol string
	BoardSize      int
	MovesHistory   string
	Layout         string
}

// Render - substitutes the params into the move-request template.
// Pure and deterministic: identical params produce identical output.
func Render(params Params) (string, error) {
	if params.BoardSize <= 0 {
		return "", fmt.Errorf("%w: board size must be positive, got %d", apperror.ErrInvalidInput, params.BoardSize)
	}

	if params.Symbol == "" || params.OpponentSymbol == "" {
		return "", fmt.Errorf("%w: player symbols must not be empty", apperror.ErrInvalidInput)
	}

	if params.Symbol == params.OpponentSymbol {
		return "", fmt.Errorf("%w: player symbols must differ, both are %q", apperror.ErrInvalidInput, params.Symbol)
	}

	replacer := strings.NewReplacer(
		"{symbol}", params.Symbol,
		"{opponent_symbol}", params.OpponentSymbol,
		"{rows}", strconv.Itoa(params.BoardSize),
		"{moves_history}", params.MovesHistory,
		"{layout}", params.Layout,
	)

	return replacer.Replace(moveRequestTemplate), nil
}
