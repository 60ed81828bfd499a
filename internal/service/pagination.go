package service

import "math"

// Page is one slice of an ordered listing. Number is 1-based.
type Page[T any] struct {
	Items       []T
	Total       int64
	Number      int
	HasNext     bool
	HasPrevious bool
}

// offsetFor returns ErrInvalidPage when the page lies beyond any offset an int can address.
func offsetFor(page, size int) (int, error) {
	if page < 1 {
		page = 1
	}
	if size > 0 && page-1 > (math.MaxInt-size)/size {
		return 0, ErrInvalidPage
	}
	return (page - 1) * size, nil
}

// newPage rejects pages past the last one. Page 1 is always valid, even for an empty listing.
func newPage[T any](items []T, total int64, page, size int) (Page[T], error) {
	if page < 1 {
		page = 1
	}
	offset, err := offsetFor(page, size)
	if err != nil {
		return Page[T]{}, err
	}
	if page > 1 && int64(offset) >= total {
		return Page[T]{}, ErrInvalidPage
	}

	return Page[T]{
		Items:       items,
		Total:       total,
		Number:      page,
		HasNext:     int64(page*size) < total,
		HasPrevious: page > 1,
	}, nil
}
