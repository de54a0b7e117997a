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

import "bytes"
import "fmt"

/* -------------------------------------------------------------------------- */

// Container for genes. Ranges contains the transcription start and end
// positions. All positions are 0-based with half-open intervals.
type Genes struct {
  Names    []string
  Seqnames []string
  Ranges   []Range
  Strand   []byte
  index    map[string]int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenes(names, seqnames []string, txFrom, txTo []int, strand []byte) Genes {
  n := len(names)
  if len(seqnames) != n || len(txFrom) != n || len(txTo) != n || len(strand) != n {
    panic("NewGenes(): invalid arguments")
  }
  ranges := make([]Range, n)
  index  := map[string]int{}
  for i := 0; i < n; i++ {
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' {
      panic("NewGenes(): invalid strand")
    }
    ranges[i] = NewRange(txFrom[i], txTo[i])
    // for duplicate names the index maps to the first occurrence
    if _, ok := index[names[i]]; !ok {
      index[names[i]] = i
    }
  }
  return Genes{names, seqnames, ranges, strand, index}
}

/* -------------------------------------------------------------------------- */

// Number of genes in the container.
func (genes Genes) Length() int {
  return len(genes.Names)
}

// Returns the index of a gene.
func (genes Genes) FindGene(name string) (int, bool) {
  i, ok := genes.index[name]
  return i, ok
}

// Transcription start site of the ith gene. For genes on the plus strand
// this is the first position of the transcript, for genes on the minus
// strand the last.
func (genes Genes) TSS(i int) int {
  if genes.Strand[i] == '+' {
    return genes.Ranges[i].From
  }
  return genes.Ranges[i].To - 1
}

// Window around the transcription start site of the ith gene. The arguments
// offset5 and offset3 determine the size of the window starting from the
// TSS in 5' and 3' direction respectively. Genomic bounds are not checked,
// i.e. the window may extend beyond the ends of the chromosome.
func (genes Genes) TSSRegion(i, offset5, offset3 int) Range {
  tss := genes.TSS(i)
  if genes.Strand[i] == '+' {
    return NewRange(tss - offset5, tss + offset3 + 1)
  }
  return NewRange(tss - offset3, tss + offset5 + 1)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genes Genes) String() string {
  var buffer bytes.Buffer

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%14s %10s %10d %10d %6c",
        genes.Names   [i],
        genes.Seqnames[i],
        genes.Ranges  [i].From,
        genes.Ranges  [i].To,
        genes.Strand  [i]))
  }

  // print header
  buffer.WriteString(
    fmt.Sprintf("%14s %10s %10s %10s %6s\n",
      "names", "seqnames", "txFrom", "txTo", "strand"))

  for i := 0; i < genes.Length(); i++ {
    printRow(i)
  }
  return buffer.String()
}
