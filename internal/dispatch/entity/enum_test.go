package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyFromString(t *testing.T) {
	assert.Equal(t, StrategyLocator, StrategyFromString("locator"))
	assert.Equal(t, StrategyFactory, StrategyFromString(" factory "))
	assert.Equal(t, StrategyUnknown, StrategyFromString("Locator"))
	assert.Equal(t, StrategyUnknown, StrategyFromString(""))
}

func TestStrategy_String(t *testing.T) {
	for _, s := range []Strategy{StrategyLocator, StrategyFactory} {
		assert.Equal(t, s, StrategyFromString(s.String()))
	}
	assert.Equal(t, "unknown", StrategyUnknown.String())
}
