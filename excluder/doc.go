// Package excluder pairs a region of interest with two named axes.
//
// An Excluder answers, for a batch of positions on its two axes, which of
// them lie inside its ROI. The compound generator combines excluders into a
// single skip mask: excluders over the same axis pair are OR-ed (a point is
// kept if any region of that pair keeps it), different pairs are AND-ed.
package excluder
