package utils

import (
	"strconv"
)

// RankOrder extracts the leading integer from a free-form prize rank
// label ("1st" -> 1, "10th" -> 10). Labels without a leading number
// ("Consolation") sort after every numeric rank.
func RankOrder(rank string) int {
    end := 0
    for end < len(rank) && rank[end] >= '0' && rank[end] <= '9' {
        end++
    }
    if end == 0 {
        return int(^uint(0) >> 1) // non-numeric ranks last
    }
    n, err := strconv.Atoi(rank[:end])
    if err != nil {
        return int(^uint(0) >> 1)
    }
    return n
}
