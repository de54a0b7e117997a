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
import "io"
import "os"
import "strconv"
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Attributes that are searched for the gene name, in order of preference.
var gtfNameAttributes = []string{"gene_name", "gene_id", "transcript_id"}

func readGTFSplitLine(line string) []string {
  // if quoted
  q := false
  f := func(r rune) bool {
    if r == '"' {
      q = !q
    }
    // A quote is treated as a white space so that it is removed from the
    // line. Otherwise a white space is removed only if q (quote) is false.
    return r == '"' || ((unicode.IsSpace(r) || r == ';') && q == false)
  }
  return strings.FieldsFunc(line, f)
}

func gtfGeneName(attributes, nameAttrs []string) (string, error) {
  if len(attributes) % 2 == 1 {
    return "", fmt.Errorf("invalid list of optional fields")
  }
  for _, name := range nameAttrs {
    for i := 0; i < len(attributes); i += 2 {
      if attributes[i] == name {
        return attributes[i+1], nil
      }
    }
  }
  return "", fmt.Errorf("no gene name attribute found")
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read genes from a GTF file (gene transfer format). Only records matching
// the given feature type are kept, e.g. "transcript" or "gene". The gene
// name is taken from the first attribute in nameAttrs that is present; if
// nameAttrs is empty the default list [gene_name gene_id transcript_id] is
// used. Coordinates are converted from 1-based closed to 0-based half-open
// intervals. Comment lines and blank lines are skipped.
func (genes *Genes) ReadGTF(reader io.Reader, feature string, nameAttrs []string) error {
  if len(nameAttrs) == 0 {
    nameAttrs = gtfNameAttributes
  }
  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}

  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    fields := readGTFSplitLine(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) < 8 {
      return fmt.Errorf("ReadGTF(): expected at least eight columns at line `%d'", i)
    }
    if fields[2] != feature {
      continue
    }
    start, err := strconv.ParseInt(fields[3], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadGTF(): parsing line `%d' failed: %v", i, err)
    }
    end, err := strconv.ParseInt(fields[4], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadGTF(): parsing line `%d' failed: %v", i, err)
    }
    if fields[6] != "+" && fields[6] != "-" {
      return fmt.Errorf("ReadGTF(): invalid strand `%s' at line `%d'", fields[6], i)
    }
    name, err := gtfGeneName(fields[8:len(fields)], nameAttrs)
    if err != nil {
      return fmt.Errorf("ReadGTF(): parsing line `%d' failed: %v", i, err)
    }
    names    = append(names,    name)
    seqnames = append(seqnames, fields[0])
    txFrom   = append(txFrom,   int(start)-1)
    txTo     = append(txTo,     int(end))
    strand   = append(strand,   fields[6][0])
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *genes = NewGenes(names, seqnames, txFrom, txTo, strand)

  return nil
}

// Import genes from a GTF file. The file may be gzip compressed.
func (genes *Genes) ImportGTF(filename, feature string, nameAttrs []string) error {
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
  return genes.ReadGTF(reader, feature, nameAttrs)
}
