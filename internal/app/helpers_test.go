package app_test

import "strings"

func ptr[T any](v T) *T { return &v }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func trim(s string) string { return strings.TrimSpace(s) }
