/* Copyright (C) 2023 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package atacpeaks

/* -------------------------------------------------------------------------- */

import "sort"

/* natural sequence key
 * -------------------------------------------------------------------------- */

func isDigit(c byte) bool {
  return c >= '0' && c <= '9'
}

func toLower(c byte) byte {
  if c >= 'A' && c <= 'Z' {
    return c + 'a' - 'A'
  }
  return c
}

// Compare two runs of digits numerically. Leading zeros are stripped so
// that runs of different lengths can be compared lexicographically without
// converting them to integers, which could overflow.
func compareNumericRun(a, b string) int {
  for len(a) > 0 && a[0] == '0' {
    a = a[1:]
  }
  for len(b) > 0 && b[0] == '0' {
    b = b[1:]
  }
  if len(a) != len(b) {
    if len(a) < len(b) {
      return -1
    }
    return 1
  }
  if a < b {
    return -1
  }
  if a > b {
    return 1
  }
  return 0
}

// seqnameCompare compares two sequence names by their natural key: names
// are split into alternating runs of digits and non-digits; runs of digits
// compare as integers, all other runs compare case-insensitively. Hence
// chr2 sorts before chr10 and chr1 sorts before chrX. A digit run sorts
// before a non-digit run at the same position, and a name that exhausts
// first sorts first.
func seqnameCompare(a, b string) int {
  i, j := 0, 0
  for i < len(a) && j < len(b) {
    switch {
    case isDigit(a[i]) && isDigit(b[j]):
      p := i
      q := j
      for i < len(a) && isDigit(a[i]) {
        i++
      }
      for j < len(b) && isDigit(b[j]) {
        j++
      }
      if c := compareNumericRun(a[p:i], b[q:j]); c != 0 {
        return c
      }
    case isDigit(a[i]):
      return -1
    case isDigit(b[j]):
      return 1
    default:
      // compare the non-digit runs byte by byte
      for i < len(a) && j < len(b) && !isDigit(a[i]) && !isDigit(b[j]) {
        ci := toLower(a[i])
        cj := toLower(b[j])
        if ci != cj {
          if ci < cj {
            return -1
          }
          return 1
        }
        i++
        j++
      }
      // if only one of the runs ended at a digit, that run is a prefix
      // of the other and sorts first
      if i < len(a) && j < len(b) && isDigit(a[i]) != isDigit(b[j]) {
        if isDigit(a[i]) {
          return -1
        }
        return 1
      }
    }
  }
  if i < len(a) {
    return 1
  }
  if j < len(b) {
    return -1
  }
  return 0
}

/* -------------------------------------------------------------------------- */

type peaksSort struct {
  Peaks
  indices []int
}

func newPeaksSort(p Peaks) peaksSort {
  indices := make([]int, p.Length())
  for i := 0; i < len(indices); i++ {
    indices[i] = i
  }
  return peaksSort{p, indices}
}

/* -------------------------------------------------------------------------- */

func (r peaksSort) Len() int {
  return r.Length()
}

func (r peaksSort) Less(i, j int) bool {
  return r.Row(r.indices[i]).Less(r.Row(r.indices[j]))
}

func (r peaksSort) Swap(i, j int) {
  r.indices[i], r.indices[j] = r.indices[j], r.indices[i]
}

/* -------------------------------------------------------------------------- */

// Sort returns a new object with all records in genomic order. Since the
// interval ordering leaves overlapping records with distinct start positions
// unordered, sorting is stable and such records keep their relative input
// order.
func (obj Peaks) Sort() Peaks {
  r := newPeaksSort(obj)
  sort.Stable(r)
  return obj.Subset(r.indices)
}
