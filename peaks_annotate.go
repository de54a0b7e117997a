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

import "github.com/pbenner/threadpool"

/* tss index
 * -------------------------------------------------------------------------- */

type tssEntry struct {
  positions []int
  genes     []int
}

// Index of transcription start sites for fast nearest neighbor queries.
// TSS positions are grouped by chromosome and sorted; genes with equal TSS
// positions keep their input order.
type TSSIndex struct {
  genes   Genes
  entries map[string]tssEntry
}

func NewTSSIndex(genes Genes) TSSIndex {
  entries := map[string]tssEntry{}

  for i := 0; i < genes.Length(); i++ {
    entry := entries[genes.Seqnames[i]]
    entry.positions = append(entry.positions, genes.TSS(i))
    entry.genes     = append(entry.genes,     i)
    entries[genes.Seqnames[i]] = entry
  }
  for _, entry := range entries {
    sort.Stable(sortIntPairs{entry.positions, entry.genes})
  }
  return TSSIndex{genes, entries}
}

// Nearest returns the index of the gene whose TSS is closest to the given
// region, together with the signed distance. The distance is zero if the
// TSS falls inside the region; otherwise it is the length of the gap
// between region and TSS, with positive sign if the region is located
// downstream of the TSS with respect to the direction of transcription.
// Ties between TSS on both sides resolve to the smaller position. The last
// return value is false if the chromosome has no TSS.
func (obj TSSIndex) Nearest(seqname string, r Range) (int, int, bool) {
  entry, ok := obj.entries[seqname]
  if !ok {
    return -1, 0, false
  }
  positions := entry.positions
  n := len(positions)
  k := sort.SearchInts(positions, r.From)
  // check if a TSS falls inside the region
  if k < n && positions[k] < r.To {
    return entry.genes[k], 0, true
  }
  // compare the nearest TSS to the left and to the right
  j, d := -1, 0
  if k > 0 {
    j = k-1
    d = r.From - positions[k-1]
  }
  if k < n {
    if e := positions[k] - (r.To-1); j == -1 || e < d {
      j = k
      d = e
    }
  }
  i := entry.genes[j]
  // orient the distance along the direction of transcription
  if positions[j] < r.From {
    if obj.genes.Strand[i] == '-' {
      d = -d
    }
  } else {
    if obj.genes.Strand[i] == '+' {
      d = -d
    }
  }
  return i, d, true
}

/* -------------------------------------------------------------------------- */

// AnnotateTSS computes for every peak the gene with the nearest TSS and
// the signed distance to it (see TSSIndex.Nearest). Peaks on chromosomes
// without annotated genes have ok set to false. Queries are distributed
// over the given number of threads.
func AnnotateTSS(peaks Peaks, genes Genes, threads int) (names []string, dists []int, ok []bool) {
  index := NewTSSIndex(genes)
  n     := peaks.Length()

  names = make([]string, n)
  dists = make([]int,    n)
  ok    = make([]bool,   n)

  pool := threadpool.New(iMax(threads, 1), 100*iMax(threads, 1))
  g    := pool.NewJobGroup()

  pool.AddRangeJob(0, n, g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if j, d, found := index.Nearest(peaks.Seqnames[i], peaks.Ranges[i]); found {
      names[i] = genes.Names[j]
      dists[i] = d
      ok   [i] = true
    }
    return nil
  })
  pool.Wait(g)

  return names, dists, ok
}

/* -------------------------------------------------------------------------- */

// PromoterOverlap reports for every peak whether it shares at least one
// base with a promoter region, i.e. with a window around some TSS
// extending offset5 bases in 5' and offset3 bases in 3' direction.
func PromoterOverlap(peaks Peaks, genes Genes, offset5, offset3 int) []bool {
  // all promoter windows have the same width
  width := offset5 + offset3 + 1
  // sorted window start positions per chromosome
  entries := map[string][]int{}

  for i := 0; i < genes.Length(); i++ {
    r := genes.TSSRegion(i, offset5, offset3)
    entries[genes.Seqnames[i]] = append(entries[genes.Seqnames[i]], r.From)
  }
  for _, entry := range entries {
    sort.Ints(entry)
  }
  result := make([]bool, peaks.Length())

  for i := 0; i < peaks.Length(); i++ {
    entry, ok := entries[peaks.Seqnames[i]]
    if !ok {
      continue
    }
    // a window starting at s covers [s, s+width), which shares a base
    // with the peak iff s > From-width and s < To
    k := sort.SearchInts(entry, peaks.Ranges[i].From - width + 1)
    if k < len(entry) && entry[k] < peaks.Ranges[i].To {
      result[i] = true
    }
  }
  return result
}
