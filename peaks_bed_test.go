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

import   "bytes"
import   "os"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestPeaksBed1(t *testing.T) {

  peaks := Peaks{}

  if err := peaks.ImportNarrowPeak("peaks_test.narrowPeak"); err != nil {
    t.Error(err)
  }
  if peaks.Length() != 4 {
    t.Error("TestPeaksBed1 failed!")
  }
  if !peaks.HasNarrowPeakFields() {
    t.Error("TestPeaksBed1 failed!")
  }
  if peaks.SigValues[0] != 4.5 {
    t.Error("TestPeaksBed1 failed!")
  }
  if peaks.LogQvalues[1] != 15.5 {
    t.Error("TestPeaksBed1 failed!")
  }
  if peaks.Summits[3] != 42 {
    t.Error("TestPeaksBed1 failed!")
  }
  if peaks.Names[0] != "." {
    t.Error("TestPeaksBed1 failed!")
  }
}

func TestPeaksBed2(t *testing.T) {

  if field, err := ResolvePeakFileType("peaks.bed"); err != nil || field != ScoreFieldScore {
    t.Error("TestPeaksBed2 failed!")
  }
  if field, err := ResolvePeakFileType("peaks.narrowPeak"); err != nil || field != ScoreFieldLogQval {
    t.Error("TestPeaksBed2 failed!")
  }
  if _, err := ResolvePeakFileType("peaks.vcf"); err == nil {
    t.Error("TestPeaksBed2 failed!")
  }
}

func TestPeaksBed3(t *testing.T) {

  peaks := NewPeaks(
    []string {"chr1", "chr2"},
    []int    { 0,      50},
    []int    { 100,    80},
    []string {"A", "B"},
    []float64{ 13.1, 2.0},
    []byte   {'+', '*'})
  peaks.NormScores[0] = 0.25
  peaks.NormScores[1] = 0.5

  buffer := new(bytes.Buffer)

  if err := peaks.WriteBed6(buffer); err != nil {
    t.Error(err)
  }
  expected := "chr1\t0\t100\tA\t0.25\t+\nchr2\t50\t80\tB\t0.5\t.\n"

  if buffer.String() != expected {
    t.Error("TestPeaksBed3 failed!")
  }
}

func TestPeaksBed4(t *testing.T) {

  peaks := Peaks{}

  // wrong number of columns
  if err := peaks.ReadBed6(strings.NewReader("chr1\t0\t100\tA\t1.0\n")); err == nil {
    t.Error("TestPeaksBed4 failed!")
  }
  // unparseable coordinate
  if err := peaks.ReadBed6(strings.NewReader("chr1\tx\t100\tA\t1.0\t+\n")); err == nil {
    t.Error("TestPeaksBed4 failed!")
  }
  // blank lines are skipped
  if err := peaks.ReadBed6(strings.NewReader("\nchr1\t0\t100\tA\t1.0\t+\n\n")); err != nil {
    t.Error("TestPeaksBed4 failed!")
  }
  if peaks.Length() != 1 {
    t.Error("TestPeaksBed4 failed!")
  }
  // narrowPeak records require ten columns
  if err := peaks.ReadNarrowPeak(strings.NewReader("chr1\t0\t100\tA\t1.0\t+\n")); err == nil {
    t.Error("TestPeaksBed4 failed!")
  }
}

func TestPeaksBed5(t *testing.T) {

  filename := "peaks_test_tmp.bed.gz"

  peaks1 := Peaks{}
  peaks2 := Peaks{}

  if err := peaks1.ImportBed6("peaks_test.bed"); err != nil {
    t.Error(err)
  }
  if err := peaks1.ExportBed6(filename, true); err != nil {
    t.Error(err)
  }
  defer os.Remove(filename)

  if err := peaks2.ImportBed6(filename); err != nil {
    t.Error(err)
  }
  if peaks2.Length() != peaks1.Length() {
    t.Error("TestPeaksBed5 failed!")
  }
  for i := 0; i < peaks1.Length(); i++ {
    if !peaks1.Row(i).Equal(peaks2.Row(i)) {
      t.Error("TestPeaksBed5 failed!")
    }
  }
}
