package util

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Mod is a modulo that always lands in [0, m), even for negative n.
func Mod[A constraints.Integer](n A, m A) A {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// ReadInput reads the whole file at path, or stdin when path is empty or "-".
func ReadInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	var sb strings.Builder
	_, err := io.Copy(&sb, bufio.NewReader(r))
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
