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

import "bufio"
import "fmt"
import "compress/gzip"
import "database/sql"
import "io"
import "os"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* import genes from ucsc
 * -------------------------------------------------------------------------- */

// Read genes from a UCSC text dump. The format is a whitespace separated
// table with columns: name, seqname, strand, txStart, txEnd, cdsStart, and
// cdsEnd. The coding region columns are validated but not stored. Blank
// lines are skipped.
func (genes *Genes) ReadUCSCGenes(reader io.Reader) error {
  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}

  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 7 {
      return fmt.Errorf("ReadUCSCGenes(): expected seven columns at line `%d'", i)
    }
    if fields[2] != "+" && fields[2] != "-" {
      return fmt.Errorf("ReadUCSCGenes(): invalid strand `%s' at line `%d'", fields[2], i)
    }
    t1, err := strconv.ParseInt(fields[3], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadUCSCGenes(): parsing line `%d' failed: %v", i, err)
    }
    t2, err := strconv.ParseInt(fields[4], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadUCSCGenes(): parsing line `%d' failed: %v", i, err)
    }
    // coding region columns are required but not stored
    if _, err := strconv.ParseInt(fields[5], 10, 64); err != nil {
      return fmt.Errorf("ReadUCSCGenes(): parsing line `%d' failed: %v", i, err)
    }
    if _, err := strconv.ParseInt(fields[6], 10, 64); err != nil {
      return fmt.Errorf("ReadUCSCGenes(): parsing line `%d' failed: %v", i, err)
    }
    names    = append(names,    fields[0])
    seqnames = append(seqnames, fields[1])
    txFrom   = append(txFrom,   int(t1))
    txTo     = append(txTo,     int(t2))
    strand   = append(strand,   fields[2][0])
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *genes = NewGenes(names, seqnames, txFrom, txTo, strand)

  return nil
}

// Import genes from a UCSC text dump. The file may be gzip compressed.
func (genes *Genes) ImportUCSCGenes(filename string) error {
  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    reader = g
  } else {
    reader = f
  }
  return genes.ReadUCSCGenes(reader)
}

/* -------------------------------------------------------------------------- */

// Import genes from the public UCSC MySQL server. The genome argument is
// the name of the assembly, e.g. "hg19", and table the name of the
// annotation table, e.g. "refGene".
func ImportGenesFromUCSC(genome, table string) (Genes, error) {
  genes := Genes{}
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand string
  var i_txFrom, i_txTo int

  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return genes, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return genes, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return genes, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo); err != nil {
      return genes, err
    }
    if i_strand != "+" && i_strand != "-" {
      return genes, fmt.Errorf("ImportGenesFromUCSC(): invalid strand `%s' for gene `%s'", i_strand, i_name)
    }
    names    = append(names,    i_name)
    seqnames = append(seqnames, i_seqname)
    txFrom   = append(txFrom,   i_txFrom)
    txTo     = append(txTo,     i_txTo)
    strand   = append(strand,   i_strand[0])
  }
  if err := rows.Err(); err != nil {
    return genes, err
  }
  return NewGenes(names, seqnames, txFrom, txTo, strand), nil
}
