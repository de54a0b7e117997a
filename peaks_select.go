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

// SelectRepresentatives reduces the peak set to one representative per
// overlap cluster. Records must be in genomic order. The first record of a
// cluster serves as the cluster focus: subsequent records are assigned to
// the cluster as long as they overlap the focus, regardless of whether they
// overlap each other. Within each cluster the record with the highest
// normalized score is selected; on ties the record occurring first wins.
func (obj Peaks) SelectRepresentatives() Peaks {
  indices := []int{}

  if obj.Length() == 0 {
    return obj.Subset(indices)
  }
  focus := obj.Row(0)
  best  := 0

  for i := 1; i < obj.Length(); i++ {
    if focus.Intersects(obj.Row(i)) {
      if obj.NormScores[i] > obj.NormScores[best] {
        best = i
      }
    } else {
      indices = append(indices, best)
      focus   = obj.Row(i)
      best    = i
    }
  }
  indices = append(indices, best)

  return obj.Subset(indices)
}
