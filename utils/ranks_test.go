package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOrder(t *testing.T) {
	assert.Equal(t, 1, RankOrder("1st"))
	assert.Equal(t, 2, RankOrder("2nd"))
	assert.Equal(t, 3, RankOrder("3rd"))
	assert.Equal(t, 10, RankOrder("10th"))
	assert.Equal(t, 10, RankOrder("10"))

	// Labels without a leading number sort after every numeric rank
	assert.Equal(t, math.MaxInt, RankOrder("Consolation"))
	assert.Equal(t, math.MaxInt, RankOrder(""))
	assert.Equal(t, math.MaxInt, RankOrder("Top performer"))
}
