// Package venn partitions two or three sets into Venn regions, labels each
// region with the display codes of its members and draws the result.
package venn

import (
	"github.com/abhisek/vennquiz/internal/sets"
)

// RegionID identifies a Venn region by membership bits, one per set in
// order: "10" is A only, "011" is B ∩ C without A.
type RegionID string

// Two-set regions.
const (
	OnlyA RegionID = "10"
	OnlyB RegionID = "01"
	BothA RegionID = "11"
)

// Three-set regions.
const (
	Only100 RegionID = "100"
	Only010 RegionID = "010"
	Only001 RegionID = "001"
	Pair110 RegionID = "110"
	Pair101 RegionID = "101"
	Pair011 RegionID = "011"
	All111  RegionID = "111"
)

// TwoRegions lists the two-set regions in drawing order.
var TwoRegions = []RegionID{OnlyA, BothA, OnlyB}

// ThreeRegions lists the three-set regions in canonical order.
var ThreeRegions = []RegionID{Only100, Only010, Only001, Pair110, Pair101, Pair011, All111}

// Partition2 splits a ∪ b into A − B, B − A and A ∩ B.
func Partition2[T comparable](a, b sets.Set[T]) (onlyA, onlyB, both sets.Set[T]) {
	return a.Difference(b), b.Difference(a), a.Intersect(b)
}

// Partition3 splits a ∪ b ∪ c into its seven regions, keyed by RegionID.
func Partition3[T comparable](a, b, c sets.Set[T]) map[RegionID]sets.Set[T] {
	ab := a.Intersect(b)
	ac := a.Intersect(c)
	bc := b.Intersect(c)
	return map[RegionID]sets.Set[T]{
		Only100: a.Difference(b).Difference(c),
		Only010: b.Difference(a).Difference(c),
		Only001: c.Difference(a).Difference(b),
		Pair110: ab.Difference(c),
		Pair101: ac.Difference(b),
		Pair011: bc.Difference(a),
		All111:  ab.Intersect(c),
	}
}
