package pkg

import (
	"math/rand"
	"strings"
)

const codeRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandomCodeString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeRunes[rand.Intn(len(codeRunes))]
	}
	return string(b)
}

// RewardCode builds a redemption code from a reward name: the name's
// alphabetic characters upper-cased and truncated to 6, a hyphen, then 4
// random upper-case alphanumerics. Uniqueness is left to the storage layer.
func RewardCode(rewardName string) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(rewardName) {
		if r >= 'A' && r <= 'Z' {
			prefix.WriteRune(r)
			if prefix.Len() == 6 {
				break
			}
		}
	}
	return prefix.String() + "-" + RandomCodeString(4)
}
