package utils

import "sort"

// Index is a list of array offsets, used here for site index sets
type Index []int

func NewIndex(n int) (I Index) {
	I = make(Index, n)
	return
}

func NewFromInts(ii []int) (I Index) {
	I = make(Index, len(ii))
	copy(I, ii)
	return
}

func (I Index) Copy() (C Index) {
	if I == nil {
		return nil
	}
	C = make(Index, len(I))
	copy(C, I)
	return
}

func (I Index) Contains(target int) bool {
	for _, ind := range I {
		if ind == target {
			return true
		}
	}
	return false
}

// Membership builds a lookup for repeated Contains queries over large sets
func (I Index) Membership() (member map[int]bool) {
	member = make(map[int]bool, len(I))
	for _, ind := range I {
		member[ind] = true
	}
	return
}

func (I Index) Sort() Index {
	sort.Ints(I)
	return I
}

func (I Index) Min() (min int) {
	min = I[0]
	for _, val := range I {
		if val < min {
			min = val
		}
	}
	return
}

func (I Index) Max() (max int) {
	max = I[0]
	for _, val := range I {
		if val > max {
			max = val
		}
	}
	return
}
