package risk

// detectToxicity flags explicit toxic/offensive vocabulary. Keyword-list
// moderation trades recall (euphemisms, sarcasm, non-English slurs pass)
// for precision.
func (e *Engine) detectToxicity(text string) Level {
	return e.levelFor(e.toxicity.countDistinct(text))
}
