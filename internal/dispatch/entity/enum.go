package entity

import "strings"

// Strategy selects how a sender is obtained for a service key.
type Strategy int16

const (
	StrategyUnknown Strategy = 0
	// StrategyLocator looks the sender up in the shared table.
	StrategyLocator Strategy = 1
	// StrategyFactory builds a new sender for the dispatch.
	StrategyFactory Strategy = 2
)

func StrategyFromString(raw string) Strategy {
	switch strings.TrimSpace(raw) {
	case "locator":
		return StrategyLocator
	case "factory":
		return StrategyFactory
	default:
		return StrategyUnknown
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyLocator:
		return "locator"
	case StrategyFactory:
		return "factory"
	default:
		return "unknown"
	}
}
