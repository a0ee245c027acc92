package risk

// detectBias flags sweeping quantifiers and generalizations, a cheap
// model-agnostic signal for unbalanced framing.
func (e *Engine) detectBias(text string) Level {
	return e.levelFor(e.bias.countDistinct(text))
}
