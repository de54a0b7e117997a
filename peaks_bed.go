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
import "bytes"
import "fmt"
import "compress/gzip"
import "io"
import "os"
import "path/filepath"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

func parsePeakScore(str string) (float64, error) {
  // a dot denotes a missing score
  if str == "." {
    return 0.0, nil
  }
  return strconv.ParseFloat(str, 64)
}

func parsePeakStrand(str string) byte {
  if str[0] == '+' || str[0] == '-' {
    return str[0]
  }
  return '*'
}

/* -------------------------------------------------------------------------- */

// Read peaks from a bed file with six columns. Blank lines are skipped; any
// other line must have exactly six whitespace separated fields:
// chrom, chromStart, chromEnd, name, score, and strand.
func (obj *Peaks) ReadBed6(reader io.Reader) error {
  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  names    := []string{}
  scores   := []float64{}
  strand   := []byte{}

  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 6 {
      return fmt.Errorf("ReadBed6(): expected six columns at line `%d'", i)
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadBed6(): parsing line `%d' failed: %v", i, err)
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadBed6(): parsing line `%d' failed: %v", i, err)
    }
    t3, err := parsePeakScore(fields[4])
    if err != nil {
      return fmt.Errorf("ReadBed6(): parsing line `%d' failed: %v", i, err)
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    names    = append(names,    fields[3])
    scores   = append(scores,   t3)
    strand   = append(strand,   parsePeakStrand(fields[5]))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *obj = NewPeaks(seqnames, from, to, names, scores, strand)

  return nil
}

// Import peaks from a bed file with six columns. The file may be gzip
// compressed.
func (obj *Peaks) ImportBed6(filename string) error {
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
  return obj.ReadBed6(reader)
}

// Read peaks from a narrowPeak file. Blank lines are skipped; any other
// line must have exactly ten whitespace separated fields: the six bed
// columns followed by signalValue, pValue, qValue (both -log10
// transformed), and the summit position relative to chromStart.
func (obj *Peaks) ReadNarrowPeak(reader io.Reader) error {
  seqnames   := []string{}
  from       := []int{}
  to         := []int{}
  names      := []string{}
  scores     := []float64{}
  strand     := []byte{}
  sigValues  := []float64{}
  logPvalues := []float64{}
  logQvalues := []float64{}
  summits    := []int{}

  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 10 {
      return fmt.Errorf("ReadNarrowPeak(): expected ten columns at line `%d'", i)
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadNarrowPeak(): parsing line `%d' failed: %v", i, err)
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadNarrowPeak(): parsing line `%d' failed: %v", i, err)
    }
    t3, err := parsePeakScore(fields[4])
    if err != nil {
      return fmt.Errorf("ReadNarrowPeak(): parsing line `%d' failed: %v", i, err)
    }
    t4, err := strconv.ParseFloat(fields[6], 64)
    if err != nil {
      return fmt.Errorf("ReadNarrowPeak(): parsing line `%d' failed: %v", i, err)
    }
    t5, err := strconv.ParseFloat(fields[7], 64)
    if err != nil {
      return fmt.Errorf("ReadNarrowPeak(): parsing line `%d' failed: %v", i, err)
    }
    t6, err := strconv.ParseFloat(fields[8], 64)
    if err != nil {
      return fmt.Errorf("ReadNarrowPeak(): parsing line `%d' failed: %v", i, err)
    }
    t7, err := strconv.ParseInt(fields[9], 10, 64)
    if err != nil {
      return fmt.Errorf("ReadNarrowPeak(): parsing line `%d' failed: %v", i, err)
    }
    seqnames   = append(seqnames,   fields[0])
    from       = append(from,       int(t1))
    to         = append(to,         int(t2))
    names      = append(names,      fields[3])
    scores     = append(scores,     t3)
    strand     = append(strand,     parsePeakStrand(fields[5]))
    sigValues  = append(sigValues,  t4)
    logPvalues = append(logPvalues, t5)
    logQvalues = append(logQvalues, t6)
    summits    = append(summits,    int(t7))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  peaks := NewPeaks(seqnames, from, to, names, scores, strand)
  peaks.SigValues  = sigValues
  peaks.LogPvalues = logPvalues
  peaks.LogQvalues = logQvalues
  peaks.Summits    = summits
  *obj = peaks

  return nil
}

// Import peaks from a narrowPeak file. The file may be gzip compressed.
func (obj *Peaks) ImportNarrowPeak(filename string) error {
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
  return obj.ReadNarrowPeak(reader)
}

/* -------------------------------------------------------------------------- */

// ResolvePeakFileType determines the record schema of a peak file from its
// filename extension. Files ending in `.bed' carry six columns and are
// normalized on the score column; files ending in `.narrowPeak' carry ten
// columns and are normalized on the qValue column. Any other extension is
// an error.
func ResolvePeakFileType(filename string) (ScoreField, error) {
  switch filepath.Ext(filename) {
  case ".bed":
    return ScoreFieldScore, nil
  case ".narrowPeak":
    return ScoreFieldLogQval, nil
  }
  return ScoreFieldScore, fmt.Errorf("ResolvePeakFileType(): cannot resolve file type of `%s'", filename)
}

// Import a peak file, resolving the record schema from the filename
// extension. The returned score field selects the column that normalization
// should be computed on.
func ImportPeakFile(filename string) (Peaks, ScoreField, error) {
  peaks := Peaks{}
  field, err := ResolvePeakFileType(filename)
  if err != nil {
    return peaks, field, err
  }
  switch field {
  case ScoreFieldLogQval:
    err = peaks.ImportNarrowPeak(filename)
  default:
    err = peaks.ImportBed6(filename)
  }
  return peaks, field, err
}

/* -------------------------------------------------------------------------- */

// Write records as a bed file with six columns: chrom, chromStart,
// chromEnd, name, the normalized score, and strand. NarrowPeak columns are
// dropped on output.
func (obj Peaks) WriteBed6(writer io.Writer) error {
  w := bufio.NewWriter(writer)

  for i := 0; i < obj.Length(); i++ {
    fmt.Fprintf(w,   "%s", obj.Seqnames[i])
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].To)
    fmt.Fprintf(w, "\t%s", obj.Names[i])
    fmt.Fprintf(w, "\t%s", strconv.FormatFloat(obj.NormScores[i], 'g', -1, 64))
    if obj.Strand[i] == '*' {
      fmt.Fprintf(w, "\t%c", '.')
    } else {
      fmt.Fprintf(w, "\t%c", obj.Strand[i])
    }
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

// Export records to a bed file with six columns, optionally gzip
// compressed.
func (obj Peaks) ExportBed6(filename string, compress bool) error {
  var buffer bytes.Buffer

  if err := obj.WriteBed6(&buffer); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}
