// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package matrix

// IndexTo2D recovers the 2-D coordinate of a flat index into a flattened
// matrix buffer. nmajor is the length of the major axis (the number of rows
// for a column-major matrix). The coordinate is returned in (minor, major)
// axis order, so for a column-major matrix the result is (column, row).
func IndexTo2D(index, nmajor int) (minor, major int) {
	minor = index / nmajor
	major = index - minor*nmajor
	return minor, major
}

// SliceBounds returns the start and end positions of the slice along the
// major axis at the given minor-axis index. For a column-major matrix with
// nmajor rows, SliceBounds(j, nmajor) bounds column j in the backing buffer.
func SliceBounds(index, nmajor int) (start, end int) {
	start = index * nmajor
	end = start + nmajor
	return start, end
}
