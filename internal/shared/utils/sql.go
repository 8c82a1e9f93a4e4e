package utils

import (
	"fmt"
	"strings"
)

// JoinWithComma joins SET fragments
func JoinWithComma(clauses []string) string {
	return strings.Join(clauses, ", ")
}

// PgPlaceholder returns the n-th PostgreSQL positional parameter ($n)
func PgPlaceholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// QuestionPlaceholders returns "?, ?, ?" for n parameters
func QuestionPlaceholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Int64Args converts ids to a variadic argument list
func Int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// UniqueInt64 removes duplicates keeping first-seen order.
// Returns nil for empty input.
func UniqueInt64(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
