package chunker

import "github.com/dshills/doccontext-mcp/pkg/types"

// DefaultModel is the model identifier used when a caller supplies none.
const DefaultModel = "gpt-4o-mini"

// ModelBudget holds the token ceiling for a model and the corresponding
// character ceiling under the fixed chars/token ratio.
type ModelBudget struct {
	MaxTokens int
	MaxChars  int
}

// modelBudgets is a static lookup table keyed by model identifier. The
// character ceilings are fixed at MaxTokens * CharsPerToken rather than
// re-derived at runtime.
var modelBudgets = map[string]ModelBudget{
	"gpt-4o":            {MaxTokens: 100_000, MaxChars: 400_000},
	"gpt-4o-mini":       {MaxTokens: 100_000, MaxChars: 400_000},
	"gpt-4-turbo":       {MaxTokens: 100_000, MaxChars: 400_000},
	"gpt-3.5-turbo":     {MaxTokens: 12_000, MaxChars: 48_000},
	"claude-3-5-sonnet": {MaxTokens: 150_000, MaxChars: 600_000},
	"claude-3-haiku":    {MaxTokens: 150_000, MaxChars: 600_000},
}

// BudgetFor returns the budget for a model identifier, falling back to the
// DefaultModel budget for unknown identifiers.
func BudgetFor(model string) ModelBudget {
	if b, ok := modelBudgets[model]; ok {
		return b
	}
	return modelBudgets[DefaultModel]
}

// BudgetReport tells a caller whether text fits a model's token ceiling. It
// is the payload used to decide whether to apply truncation before
// dispatching text externally.
type BudgetReport struct {
	Valid           bool
	EstimatedTokens int
	MaxTokens       int
}

// CheckBudget estimates the token count of text and validates it against the
// model's ceiling.
func CheckBudget(text, model string) BudgetReport {
	budget := BudgetFor(model)
	est := types.EstimateTokens(text)
	return BudgetReport{
		Valid:           est <= budget.MaxTokens,
		EstimatedTokens: est,
		MaxTokens:       budget.MaxTokens,
	}
}
