package frontend

import (
	"strconv"
)

func toOrdinal(n int) string {
	suffix := "th"

	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// pluralize prefixes a noun with its count, adding an "s" unless n is 1
func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
