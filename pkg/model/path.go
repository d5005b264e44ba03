package model

import (
	"strconv"
	"strings"
)

// Path addresses a node in the resource tree.
type Path struct {
	Object           string
	Instance         int
	Resource         string
	ResourceInstance int // -1 when the resource has a single instance
}

// String returns the path as "object/instance/resource[/resourceInstance]".
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(p.Object)
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(p.Instance))
	if p.Resource == "" {
		return b.String()
	}
	b.WriteByte('/')
	b.WriteString(p.Resource)
	if p.ResourceInstance >= 0 {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(p.ResourceInstance))
	}
	return b.String()
}

// lessName orders numeric names numerically and falls back to string order.
func lessName(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
