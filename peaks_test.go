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

//import   "fmt"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestPeaks1(t *testing.T) {

  peaks := Peaks{}

  if err := peaks.ImportBed6("peaks_test.bed"); err != nil {
    t.Error(err)
  }
  //fmt.Println(peaks)

  if peaks.Length() != 8 {
    t.Error("TestPeaks1 failed!")
  }
  if peaks.HasNarrowPeakFields() {
    t.Error("TestPeaks1 failed!")
  }
  if peaks.NormScores[0] != -1.0 {
    t.Error("TestPeaks1 failed!")
  }
  // a dot denotes a missing score
  if peaks.Scores[4] != 0.0 {
    t.Error("TestPeaks1 failed!")
  }
  if peaks.Strand[2] != '*' {
    t.Error("TestPeaks1 failed!")
  }
  if peaks.Names[3] != "peak_a" {
    t.Error("TestPeaks1 failed!")
  }
}

func TestPeaks2(t *testing.T) {

  peaks1 := Peaks{}
  peaks2 := Peaks{}
  empty  := Peaks{}

  if err := peaks1.ImportBed6("peaks_test.bed"); err != nil {
    t.Error(err)
  }
  if err := peaks2.ImportNarrowPeak("peaks_test.narrowPeak"); err != nil {
    t.Error(err)
  }
  if !peaks2.HasNarrowPeakFields() {
    t.Error("TestPeaks2 failed!")
  }
  r1 := peaks2.Append(peaks2)
  if r1.Length() != 8 || !r1.HasNarrowPeakFields() {
    t.Error("TestPeaks2 failed!")
  }
  // records of mixed origin degrade to plain bed6 columns
  r2 := peaks1.Append(peaks2)
  if r2.Length() != 12 || r2.HasNarrowPeakFields() {
    t.Error("TestPeaks2 failed!")
  }
  r3 := empty.Append(peaks2)
  if r3.Length() != 4 || !r3.HasNarrowPeakFields() {
    t.Error("TestPeaks2 failed!")
  }
  r4 := peaks1.Append(empty)
  if r4.Length() != 8 {
    t.Error("TestPeaks2 failed!")
  }
}

func TestPeaks3(t *testing.T) {

  peaks := NewPeaks(
    []string{"chr2", "chr2", "chr2", "chr10", "chr2"},
    []int   { 100,    100,    400,    50,      250},
    []int   { 200,    300,    500,    80,      350},
    nil, nil, nil)

  // same start position: the shorter peak precedes the longer one
  if !peaks.Row(0).Less(peaks.Row(1)) {
    t.Error("TestPeaks3 failed!")
  }
  if peaks.Row(1).Less(peaks.Row(0)) {
    t.Error("TestPeaks3 failed!")
  }
  // disjoint peaks on the same chromosome
  if !peaks.Row(1).Less(peaks.Row(2)) {
    t.Error("TestPeaks3 failed!")
  }
  if !peaks.Row(2).Greater(peaks.Row(1)) {
    t.Error("TestPeaks3 failed!")
  }
  // chr2 precedes chr10
  if !peaks.Row(2).Less(peaks.Row(3)) {
    t.Error("TestPeaks3 failed!")
  }
  if !peaks.Row(3).Greater(peaks.Row(2)) {
    t.Error("TestPeaks3 failed!")
  }
  // overlapping peaks with distinct start positions are not ordered
  // by Less, but Greater still orders them by start position
  if peaks.Row(1).Less(peaks.Row(4)) || peaks.Row(4).Less(peaks.Row(1)) {
    t.Error("TestPeaks3 failed!")
  }
  if !peaks.Row(4).Greater(peaks.Row(1)) {
    t.Error("TestPeaks3 failed!")
  }
  // equality ignores names, scores, and strands
  other := NewPeaks(
    []string {"chr2"},
    []int    { 100},
    []int    { 200},
    []string {"x"},
    []float64{ 1.5},
    []byte   {'-'})
  if !peaks.Row(0).Equal(other.Row(0)) {
    t.Error("TestPeaks3 failed!")
  }
}

func TestPeaks4(t *testing.T) {

  peaks := NewPeaks(
    []string{"chr1", "chr1", "chr1", "chr2", "chr1"},
    []int   { 100,    150,    200,    100,    201},
    []int   { 200,    250,    300,    250,    300},
    nil, nil, nil)

  // overlap is symmetric
  if !peaks.Row(0).Intersects(peaks.Row(1)) {
    t.Error("TestPeaks4 failed!")
  }
  if !peaks.Row(1).Intersects(peaks.Row(0)) {
    t.Error("TestPeaks4 failed!")
  }
  // abutting peaks intersect
  if !peaks.Row(0).Intersects(peaks.Row(2)) {
    t.Error("TestPeaks4 failed!")
  }
  if peaks.Row(0).Intersects(peaks.Row(4)) {
    t.Error("TestPeaks4 failed!")
  }
  // peaks on different chromosomes never intersect
  if peaks.Row(1).Intersects(peaks.Row(3)) {
    t.Error("TestPeaks4 failed!")
  }
}

func TestPeaks5(t *testing.T) {

  peaks := NewPeaks(
    []string{"chr1", "chr1", "chrUn_gl000220", "chr2"},
    []int   { 100,    900,    10,               50},
    []int   { 200,    1200,   90,               150},
    nil, nil, nil)

  genome := NewGenome(
    []string{"chr1", "chr2"},
    []int   { 1000,   2000})

  filtered := peaks.FilterGenome(genome)

  // the second peak exceeds the length of chr1
  if filtered.Length() != 2 {
    t.Error("TestPeaks5 failed!")
  }
  if filtered.Seqnames[0] != "chr1" || filtered.Seqnames[1] != "chr2" {
    t.Error("TestPeaks5 failed!")
  }
}
