package utils

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

var hashrateScales = []struct {
	unit  string
	bound *big.Int
}{
	{"EH/s", exp10(18)},
	{"PH/s", exp10(15)},
	{"TH/s", exp10(12)},
	{"GH/s", exp10(9)},
	{"MH/s", exp10(6)},
	{"kH/s", exp10(3)},
}

func exp10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// ParseDifficulty reads the node's difficulty as an unsigned big integer.
// Accepts 0x-prefixed hex or bare decimal; anything else reports ok=false.
func ParseDifficulty(value string) (*big.Int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}

	var (
		d  *big.Int
		ok bool
	)
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		d, ok = new(big.Int).SetString(value[2:], 16)
	} else {
		d, ok = new(big.Int).SetString(value, 10)
	}
	if !ok || d.Sign() < 0 {
		return nil, false
	}
	return d, true
}

// DifficultyToHashrate estimates hashes per second from difficulty and the
// average block interval. The divisor is rounded and clamped to 1.
func DifficultyToHashrate(difficulty *big.Int, avgBlockTimeSec float64) *big.Int {
	divisor := int64(math.Round(avgBlockTimeSec))
	if divisor < 1 {
		divisor = 1
	}
	return new(big.Int).Quo(difficulty, big.NewInt(divisor))
}

// FormatHashrate renders a hashes-per-second value with a scale unit and
// two decimal places, e.g. "123.45 TH/s".
func FormatHashrate(rate *big.Int) string {
	for _, s := range hashrateScales {
		if rate.Cmp(s.bound) >= 0 {
			value, _ := new(big.Float).Quo(new(big.Float).SetInt(rate), new(big.Float).SetInt(s.bound)).Float64()
			return fmt.Sprintf("%.2f %s", value, s.unit)
		}
	}
	value, _ := new(big.Float).SetInt(rate).Float64()
	return fmt.Sprintf("%.2f H/s", value)
}

// WholeTeraHash truncates a hashes-per-second value to whole TH/s, clamped
// to the int64 range.
func WholeTeraHash(rate *big.Int) int64 {
	ths := new(big.Int).Quo(rate, exp10(12))
	if !ths.IsInt64() {
		return math.MaxInt64
	}
	return ths.Int64()
}
