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

import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {

  genome := Genome{}

  if err := genome.Import("genome_test.txt"); err != nil {
    t.Error(err)
  }
  if genome.Length() != 4 {
    t.Error("TestGenome1 failed!")
  }
  if length, err := genome.SeqLength("chr10"); err != nil || length != 135534747 {
    t.Error("TestGenome1 failed!")
  }
  if _, err := genome.SeqLength("chr11"); err == nil {
    t.Error("TestGenome1 failed!")
  }
}

func TestGenome2(t *testing.T) {

  genome := Genome{}

  // a single column is not enough
  if err := genome.Read(strings.NewReader("chr1\n")); err == nil {
    t.Error("TestGenome2 failed!")
  }
  if err := genome.Read(strings.NewReader("chr1\tx\n")); err == nil {
    t.Error("TestGenome2 failed!")
  }
  // additional columns are ignored
  if err := genome.Read(strings.NewReader("chr1\t1000\t/gbdb/hg19\n")); err != nil {
    t.Error("TestGenome2 failed!")
  }
  if genome.Length() != 1 || genome.Lengths[0] != 1000 {
    t.Error("TestGenome2 failed!")
  }
}
