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

// Columnar container for peak records. The first six columns correspond to
// the columns of a bed file with six columns. NormScores is a derived column
// holding normalized scores; it is initialized to -1, meaning that records
// have not been normalized yet. The narrowPeak columns are nil unless
// records were imported from a narrowPeak file.
type Peaks struct {
  Seqnames   []string
  Ranges     []Range
  Names      []string
  Scores     []float64
  Strand     []byte
  NormScores []float64
  // optional narrowPeak columns
  SigValues  []float64
  LogPvalues []float64
  LogQvalues []float64
  Summits    []int
}

/* constructors
 * -------------------------------------------------------------------------- */

// Create a new Peaks object from bed6 columns. The names, scores, and strand
// arguments may be empty, in which case default values are substituted
// (".", 0, and '*' respectively).
func NewPeaks(seqnames []string, from, to []int, names []string, scores []float64, strand []byte) Peaks {
  n := len(seqnames)
  if len(from) != n || len(to) != n        ||
    (len(names ) != 0 && len(names ) != n) ||
    (len(scores) != 0 && len(scores) != n) ||
    (len(strand) != 0 && len(strand) != n) {
    panic("NewPeaks(): invalid arguments!")
  }
  if len(names) == 0 {
    names = make([]string, n)
    for i := 0; i < n; i++ {
      names[i] = "."
    }
  }
  if len(scores) == 0 {
    scores = make([]float64, n)
  }
  if len(strand) == 0 {
    strand = make([]byte, n)
    for i := 0; i < n; i++ {
      strand[i] = '*'
    }
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    // create range
    ranges[i] = NewRange(from[i], to[i])
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' && strand[i] != '*' {
      panic("NewPeaks(): Invalid strand!")
    }
  }
  normScores := make([]float64, n)
  for i := 0; i < n; i++ {
    normScores[i] = -1.0
  }
  return Peaks{seqnames, ranges, names, scores, strand, normScores, nil, nil, nil, nil}
}

func (obj Peaks) Clone() Peaks {
  result := Peaks{}
  n := obj.Length()
  result.Seqnames   = make([]string , n)
  result.Ranges     = make([]Range  , n)
  result.Names      = make([]string , n)
  result.Scores     = make([]float64, n)
  result.Strand     = make([]byte   , n)
  result.NormScores = make([]float64, n)
  copy(result.Seqnames  , obj.Seqnames)
  copy(result.Ranges    , obj.Ranges)
  copy(result.Names     , obj.Names)
  copy(result.Scores    , obj.Scores)
  copy(result.Strand    , obj.Strand)
  copy(result.NormScores, obj.NormScores)
  if obj.HasNarrowPeakFields() {
    result.SigValues  = make([]float64, n)
    result.LogPvalues = make([]float64, n)
    result.LogQvalues = make([]float64, n)
    result.Summits    = make([]int    , n)
    copy(result.SigValues , obj.SigValues)
    copy(result.LogPvalues, obj.LogPvalues)
    copy(result.LogQvalues, obj.LogQvalues)
    copy(result.Summits   , obj.Summits)
  }
  return result
}

/* -------------------------------------------------------------------------- */

func (obj Peaks) Length() int {
  return len(obj.Ranges)
}

// Returns true if the object carries the narrowPeak columns.
func (obj Peaks) HasNarrowPeakFields() bool {
  return obj.SigValues != nil
}

// Append the records of a second object. The narrowPeak columns are kept
// only if both objects carry them, i.e. concatenating records of mixed
// origin degrades the result to plain bed6 columns.
func (obj Peaks) Append(peaks Peaks) Peaks {
  if obj.Length() == 0 {
    return peaks.Clone()
  }
  if peaks.Length() == 0 {
    return obj.Clone()
  }
  result := obj.Clone()
  result.Seqnames   = append(result.Seqnames  , peaks.Seqnames  ...)
  result.Ranges     = append(result.Ranges    , peaks.Ranges    ...)
  result.Names      = append(result.Names     , peaks.Names     ...)
  result.Scores     = append(result.Scores    , peaks.Scores    ...)
  result.Strand     = append(result.Strand    , peaks.Strand    ...)
  result.NormScores = append(result.NormScores, peaks.NormScores...)
  if result.HasNarrowPeakFields() && peaks.HasNarrowPeakFields() {
    result.SigValues  = append(result.SigValues , peaks.SigValues ...)
    result.LogPvalues = append(result.LogPvalues, peaks.LogPvalues...)
    result.LogQvalues = append(result.LogQvalues, peaks.LogQvalues...)
    result.Summits    = append(result.Summits   , peaks.Summits   ...)
  } else {
    result.SigValues  = nil
    result.LogPvalues = nil
    result.LogQvalues = nil
    result.Summits    = nil
  }
  return result
}

func (obj Peaks) Subset(indices []int) Peaks {
  n := len(indices)
  seqnames := make([]string , n)
  from     := make([]int    , n)
  to       := make([]int    , n)
  names    := make([]string , n)
  scores   := make([]float64, n)
  strand   := make([]byte   , n)

  for i := 0; i < n; i++ {
    seqnames[i] = obj.Seqnames[indices[i]]
    from    [i] = obj.Ranges  [indices[i]].From
    to      [i] = obj.Ranges  [indices[i]].To
    names   [i] = obj.Names   [indices[i]]
    scores  [i] = obj.Scores  [indices[i]]
    strand  [i] = obj.Strand  [indices[i]]
  }
  result := NewPeaks(seqnames, from, to, names, scores, strand)
  for i := 0; i < n; i++ {
    result.NormScores[i] = obj.NormScores[indices[i]]
  }
  if obj.HasNarrowPeakFields() {
    result.SigValues  = make([]float64, n)
    result.LogPvalues = make([]float64, n)
    result.LogQvalues = make([]float64, n)
    result.Summits    = make([]int    , n)
    for i := 0; i < n; i++ {
      result.SigValues [i] = obj.SigValues [indices[i]]
      result.LogPvalues[i] = obj.LogPvalues[indices[i]]
      result.LogQvalues[i] = obj.LogQvalues[indices[i]]
      result.Summits   [i] = obj.Summits   [indices[i]]
    }
  }
  return result
}

// FilterGenome removes all records located on sequences that are not part
// of the given genome or exceeding the sequence length.
func (obj Peaks) FilterGenome(genome Genome) Peaks {
  idx := []int{}
  for i := 0; i < obj.Length(); i++ {
    length, err := genome.SeqLength(obj.Seqnames[i])
    if err != nil || obj.Ranges[i].To > length {
      continue
    }
    idx = append(idx, i)
  }
  return obj.Subset(idx)
}

/* row view
 * -------------------------------------------------------------------------- */

type Peak struct {
  Seqname   string
  Range     Range
  Name      string
  Score     float64
  Strand    byte
  NormScore float64
}

func (obj Peaks) Row(i int) Peak {
  return Peak{
    obj.Seqnames  [i],
    obj.Ranges    [i],
    obj.Names     [i],
    obj.Scores    [i],
    obj.Strand    [i],
    obj.NormScores[i] }
}

// Two peaks are equal if they are located on the same sequence and share
// start and end positions. Names, scores, and strands are not considered.
func (a Peak) Equal(b Peak) bool {
  return a.Seqname == b.Seqname && a.Range == b.Range
}

// Less implements the interval ordering: peaks on different sequences are
// ordered by the natural sequence key; on the same sequence a peak precedes
// another one if it ends strictly before the other peak starts, or if both
// start at the same position and it ends first. Overlapping peaks with
// distinct start positions are mutually unordered, hence all sorting must
// be stable.
func (a Peak) Less(b Peak) bool {
  if c := seqnameCompare(a.Seqname, b.Seqname); c != 0 {
    return c < 0
  }
  if a.Range.To < b.Range.From {
    return true
  }
  return a.Range.From == b.Range.From && a.Range.To < b.Range.To
}

func (a Peak) Greater(b Peak) bool {
  if c := seqnameCompare(a.Seqname, b.Seqname); c != 0 {
    return c > 0
  }
  return a.Range.From > b.Range.From
}

// Intersects tests whether two peaks overlap. Peaks on different sequences
// never overlap.
func (a Peak) Intersects(b Peak) bool {
  return a.Seqname == b.Seqname && a.Range.Overlaps(b.Range)
}

func (a Peak) String() string {
  return fmt.Sprintf("%s:%s", a.Seqname, a.Range)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (obj Peaks) String() string {
  var buffer bytes.Buffer

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10s %10d %10d %10s %10.3f %6c %10.5f",
        obj.Seqnames  [i],
        obj.Ranges    [i].From,
        obj.Ranges    [i].To,
        obj.Names     [i],
        obj.Scores    [i],
        obj.Strand    [i],
        obj.NormScores[i]))
  }

  // print header
  buffer.WriteString(
    fmt.Sprintf("%10s %10s %10s %10s %10s %6s %10s\n",
      "seqnames", "from", "to", "names", "scores", "strand", "normScores"))

  for i := 0; i < obj.Length(); i++ {
    printRow(i)
  }
  return buffer.String()
}
