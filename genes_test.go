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

func TestGenes1(t *testing.T) {

  genes := NewGenes(
    []string{"g1", "g2"},
    []string{"chr1", "chr1"},
    []int   { 900,    2000},
    []int   { 1500,   2200},
    []byte  {'+', '-'})

  if genes.Length() != 2 {
    t.Error("TestGenes1 failed!")
  }
  // on the plus strand the TSS is the first position of the transcript
  if genes.TSS(0) != 900 {
    t.Error("TestGenes1 failed!")
  }
  // on the minus strand the TSS is the last position of the transcript
  if genes.TSS(1) != 2199 {
    t.Error("TestGenes1 failed!")
  }
  if i, ok := genes.FindGene("g2"); !ok || i != 1 {
    t.Error("TestGenes1 failed!")
  }
  if _, ok := genes.FindGene("g3"); ok {
    t.Error("TestGenes1 failed!")
  }
}

func TestGenes2(t *testing.T) {

  genes := NewGenes(
    []string{"g1", "g2"},
    []string{"chr1", "chr1"},
    []int   { 900,    2000},
    []int   { 1500,   2200},
    []byte  {'+', '-'})

  // plus strand: the window extends offset5 bases to the left and
  // offset3 bases to the right of the TSS
  if r := genes.TSSRegion(0, 100, 150); r.From != 800 || r.To != 1051 {
    t.Error("TestGenes2 failed!")
  }
  // minus strand: the orientation is reversed
  if r := genes.TSSRegion(1, 100, 150); r.From != 2049 || r.To != 2300 {
    t.Error("TestGenes2 failed!")
  }
}

func TestGenes3(t *testing.T) {

  // for duplicate names the index maps to the first occurrence
  genes := NewGenes(
    []string{"g1", "g1", "g2"},
    []string{"chr1", "chr2", "chr2"},
    []int   { 100,    100,    500},
    []int   { 200,    200,    600},
    []byte  {'+', '+', '+'})

  if i, ok := genes.FindGene("g1"); !ok || i != 0 {
    t.Error("TestGenes3 failed!")
  }
}
