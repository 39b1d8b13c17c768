package venn

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/vennquiz/internal/sets"
)

// Abbreviator maps an entity to its display code.
type Abbreviator interface {
	Abbrev(entity string) (string, error)
}

// Region is one labelled area of a diagram.
type Region struct {
	ID      RegionID
	Caption string
	Members sets.Set[string]

	// Codes are the members' display codes, sorted.
	Codes []string

	// Label is Codes joined by line breaks.
	Label string

	// Fill is the hex colour the region is drawn with.
	Fill string
}

// Diagram is the structured result of rendering two or three sets.
type Diagram struct {
	Title     string
	SetLabels []string
	Highlight Highlight
	Regions   []Region
}

// Region returns the region with the given id.
func (d Diagram) Region(id RegionID) (Region, bool) {
	for _, r := range d.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Build2 partitions a and b and labels the three regions. It fails when a
// member has no display code.
func Build2(ab Abbreviator, a, b sets.Set[string], labelA, labelB, title string, h Highlight) (Diagram, error) {
	onlyA, onlyB, both := Partition2(a, b)
	parts := map[RegionID]sets.Set[string]{OnlyA: onlyA, OnlyB: onlyB, BothA: both}
	captions := map[RegionID]string{
		OnlyA: labelA,
		OnlyB: labelB,
		BothA: labelA + " ∩ " + labelB,
	}

	d := Diagram{Title: title, SetLabels: []string{labelA, labelB}, Highlight: h}
	for _, id := range TwoRegions {
		r, err := newRegion(ab, id, captions[id], parts[id], Fill(h, id))
		if err != nil {
			return Diagram{}, err
		}
		d.Regions = append(d.Regions, r)
	}
	return d, nil
}

// Build3 partitions a, b and c into seven regions and labels them.
func Build3(ab Abbreviator, a, b, c sets.Set[string], labelA, labelB, labelC, title string) (Diagram, error) {
	parts := Partition3(a, b, c)
	labels := []string{labelA, labelB, labelC}

	d := Diagram{Title: title, SetLabels: labels}
	for _, id := range ThreeRegions {
		r, err := newRegion(ab, id, caption3(id, labels), parts[id], Fill(HighlightNone, id))
		if err != nil {
			return Diagram{}, err
		}
		d.Regions = append(d.Regions, r)
	}
	return d, nil
}

func newRegion(ab Abbreviator, id RegionID, caption string, members sets.Set[string], fill string) (Region, error) {
	codes := make([]string, 0, members.Len())
	for _, e := range sets.Sorted(members) {
		code, err := ab.Abbrev(e)
		if err != nil {
			return Region{}, fmt.Errorf("region %s: %w", id, err)
		}
		codes = append(codes, code)
	}
	slices.Sort(codes)

	return Region{
		ID:      id,
		Caption: caption,
		Members: members,
		Codes:   codes,
		Label:   strings.Join(codes, "\n"),
		Fill:    fill,
	}, nil
}

// caption3 names a three-set region by the sets it lies in.
func caption3(id RegionID, labels []string) string {
	var in []string
	for i, bit := range string(id) {
		if bit == '1' {
			in = append(in, labels[i])
		}
	}
	if len(in) == 1 {
		return in[0]
	}
	return strings.Join(in, " ∩ ")
}
