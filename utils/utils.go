package utils

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MakeReferenceID builds a short human-shareable RFQ reference:
// "{code}-{5 base36 time chars}{4 base36 random chars}", upper-case.
// Purely advisory — no uniqueness guarantee, nothing is stored.
func MakeReferenceID(code string) string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	if len(ts) > 5 {
		ts = ts[len(ts)-5:]
	}
	rx := make([]byte, 4)
	for i := range rx {
		rx[i] = base36[rand.IntN(len(base36))]
	}
	return code + "-" + ts + string(rx)
}

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

func GenerateSlug(name string) string {
	// Normalize accents
	t := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // remove accent marks
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(b.String())
	s = slugCleanup.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	return s
}

func ParseBoolQuery(value string) (*bool, error) {
	if value == "" {
		return nil, nil // not provided
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func ParseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
