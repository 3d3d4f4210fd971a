package domain

// Enumerations shared between request validation and list filtering.

var JudgmentActions = []string{"BUY", "SELL", "HOLD", "REBALANCE", "WATCH"}

func IsJudgmentAction(value string) bool {
	for _, a := range JudgmentActions {
		if a == value {
			return true
		}
	}
	return false
}
