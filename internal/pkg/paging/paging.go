// Package paging normalizes page/size/sort parameters and carries page results.
package paging

import (
	"math"
	"slices"
	"strings"
)

const (
	DefaultPage = 0
	DefaultSize = 20
	MaxSize     = 100
	// MaxPage keeps Offset within int32 for every allowed size.
	MaxPage = math.MaxInt32 / MaxSize
	DefaultSort = "createdAt"
)

var sortFields = []string{
	"id", "createdAt", "updatedAt", "deliveryDate", "orderStatus", "payment", "shopName", "productName",
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// PageRequest is a normalized, zero-based page request.
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction Direction
}

// NewPageRequest clamps page to [0, MaxPage] and size to (0, MaxSize], falls back to
// DefaultSort for unknown sort fields and sorts descending unless direction is "asc".
func NewPageRequest(page, size int, sort, direction string) PageRequest {
	switch {
	case page < 0:
		page = DefaultPage
	case page > MaxPage:
		page = MaxPage
	}
	switch {
	case size <= 0:
		size = DefaultSize
	case size > MaxSize:
		size = MaxSize
	}
	if !IsValidSortField(sort) {
		sort = DefaultSort
	}
	dir := Desc
	if strings.EqualFold(strings.TrimSpace(direction), string(Asc)) {
		dir = Asc
	}
	return PageRequest{Page: page, Size: size, Sort: sort, Direction: dir}
}

// DefaultPageRequest is the first page sorted by creation time, newest first.
func DefaultPageRequest() PageRequest {
	return NewPageRequest(DefaultPage, DefaultSize, DefaultSort, string(Desc))
}

func IsValidSortField(field string) bool {
	return slices.Contains(sortFields, field)
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

func (p PageRequest) Descending() bool {
	return p.Direction != Asc
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
}

func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: req.Page, Size: req.Size, TotalElements: total}
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) IsFirst() bool { return p.Page == 0 }

func (p Page[T]) IsLast() bool { return p.Page+1 >= p.TotalPages() }

// Map converts the items of a page, keeping its position.
func Map[T, R any](p Page[T], f func(T) R) Page[R] {
	out := make([]R, len(p.Items))
	for i, item := range p.Items {
		out[i] = f(item)
	}
	return Page[R]{Items: out, Page: p.Page, Size: p.Size, TotalElements: p.TotalElements}
}
