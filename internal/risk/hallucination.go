package risk

// detectHallucination flags absolutist/overcertainty language. The
// absence of hedging combined with strong certainty claims is the
// cheapest proxy for fabricated content in generated text.
func (e *Engine) detectHallucination(text string) Level {
	return e.levelFor(e.hallucination.countDistinct(text))
}
