package risk

// detectFraud flags urgency/pressure tactics and guarantee-of-gain
// phrasing. Scam text reliably clusters both.
func (e *Engine) detectFraud(text string) Level {
	return e.levelFor(e.fraud.countDistinct(text))
}
