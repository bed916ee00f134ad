package openbazaar

import "math"

// SatoshisPerCoin is the number of smallest units in one coin.
const SatoshisPerCoin = 100000000

// RoundSatoshis converts a coin amount to the nearest whole number of satoshis.
func RoundSatoshis(coins float64) int64 {
	return int64(math.Round(coins * SatoshisPerCoin))
}
