package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Binomial. C(n, r), saturates at math.MaxInt
func Binomial(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	res := 1
	for i := 1; i <= r; i++ {
		next := res * (n - r + i)
		if next/(n-r+i) != res {
			return math.MaxInt
		}
		res = next / i
	}
	return res
}

// ParseIntList. "8, 10,12" -> [8 10 12]
func ParseIntList(s string) ([]int, error) {
	parts := lo.Filter(strings.Split(s, ","), func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	})

	res := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse int list %q: %w", s, err)
		}
		res = append(res, v)
	}
	return res, nil
}
