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
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGenesUCSC1(t *testing.T) {

  genes := Genes{}

  if err := genes.ImportUCSCGenes("genes_ucsc_test.txt"); err != nil {
    t.Error(err)
  }
  if genes.Length() != 3 {
    t.Error("TestGenesUCSC1 failed!")
  }
  if genes.Names[0] != "NM_001" || genes.Seqnames[2] != "chr2" {
    t.Error("TestGenesUCSC1 failed!")
  }
  if genes.TSS(0) != 11873 {
    t.Error("TestGenesUCSC1 failed!")
  }
  if genes.TSS(1) != 29369 {
    t.Error("TestGenesUCSC1 failed!")
  }
}

func TestGenesUCSC2(t *testing.T) {

  genes := Genes{}

  // the coding region columns are required
  if err := genes.ReadUCSCGenes(strings.NewReader("NM_004\tchr1\t+\t100\t200\t100\n")); err == nil {
    t.Error("TestGenesUCSC2 failed!")
  }
  if err := genes.ReadUCSCGenes(strings.NewReader("NM_004\tchr1\t*\t100\t200\t100\t200\n")); err == nil {
    t.Error("TestGenesUCSC2 failed!")
  }
}

// func TestGenesUCSC3(t *testing.T) {

//   genes, err := ImportGenesFromUCSC("hg19", "refGene")
//   if err != nil {
//     t.Error(err)
//   }
//   fmt.Println(genes)

// }
