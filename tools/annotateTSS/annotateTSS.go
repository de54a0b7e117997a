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

package main

/* -------------------------------------------------------------------------- */

import   "bufio"
import   "fmt"
import   "io"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/atacpeaks"
import   "github.com/pbenner/atacpeaks/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  GTF        string
  GTFFeature string
  GenesFile  string
  UCSC       string
  GenomeFile string
  Promoter   bool
  Offset5    int
  Offset3    int
  Threads    int
  Status     bool
  Verbose    int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* import annotation
 * -------------------------------------------------------------------------- */

func importGenesGTF(config Config) Genes {
  genes := Genes{}
  PrintStderr(config, 1, "Reading genes from `%s'... ", config.GTF)
  if err := genes.ImportGTF(config.GTF, config.GTFFeature, nil); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  return genes
}

func importGenesUCSCFile(config Config) Genes {
  genes := Genes{}
  PrintStderr(config, 1, "Reading genes from `%s'... ", config.GenesFile)
  if err := genes.ImportUCSCGenes(config.GenesFile); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  return genes
}

func importGenesUCSCDatabase(config Config) Genes {
  fields := strings.Split(config.UCSC, ":")
  if len(fields) != 2 {
    log.Fatalf("invalid UCSC annotation source `%s': expected ASSEMBLY:TABLE", config.UCSC)
  }
  PrintStderr(config, 1, "Importing table `%s' from UCSC assembly `%s'... ", fields[1], fields[0])
  genes, err := ImportGenesFromUCSC(fields[0], fields[1])
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  return genes
}

func importGenes(config Config) Genes {
  switch {
  case config.GTF       != "": return importGenesGTF         (config)
  case config.GenesFile != "": return importGenesUCSCFile    (config)
  default                    : return importGenesUCSCDatabase(config)
  }
}

/* import peaks
 * -------------------------------------------------------------------------- */

func importPeaks(config Config, filename string) Peaks {
  PrintStderr(config, 1, "Reading peaks from `%s'... ", filename)
  peaks, _, err := ImportPeakFile(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if config.GenomeFile != "" {
    genome := Genome{}
    PrintStderr(config, 1, "Reading genome from `%s'... ", config.GenomeFile)
    if err := genome.Import(config.GenomeFile); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    peaks = peaks.FilterGenome(genome)
  }
  return peaks
}

/* -------------------------------------------------------------------------- */

func annotatePeaks(config Config, peaks Peaks, genes Genes) ([]string, []int, []bool) {
  if !config.Status {
    PrintStderr(config, 1, "Annotating peaks... ")
    names, dists, ok := AnnotateTSS(peaks, genes, config.Threads)
    PrintStderr(config, 1, "done\n")
    return names, dists, ok
  }
  index := NewTSSIndex(genes)
  n     := peaks.Length()

  names := make([]string, n)
  dists := make([]int,    n)
  ok    := make([]bool,   n)

  pool := threadpool.New(config.Threads, 100*config.Threads)
  g    := pool.NewJobGroup()

  for i := 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    // add task to the thread pool
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      if k, d, found := index.Nearest(peaks.Seqnames[j], peaks.Ranges[j]); found {
        names[j] = genes.Names[k]
        dists[j] = d
        ok   [j] = true
      }
      return nil
    })
    progress.New(n, 1000).PrintStderr(i+1)
  }
  pool.Wait(g)

  return names, dists, ok
}

/* output
 * -------------------------------------------------------------------------- */

func writeTable(writer io.Writer, peaks Peaks, names []string, dists []int, ok, promoter []bool) error {
  w := bufio.NewWriter(writer)

  for i := 0; i < peaks.Length(); i++ {
    fmt.Fprintf(w,   "%s", peaks.Seqnames[i])
    fmt.Fprintf(w, "\t%d", peaks.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", peaks.Ranges[i].To)
    fmt.Fprintf(w, "\t%s", peaks.Names[i])
    fmt.Fprintf(w, "\t%s", strconv.FormatFloat(peaks.Scores[i], 'g', -1, 64))
    if peaks.Strand[i] == '*' {
      fmt.Fprintf(w, "\t%c", '.')
    } else {
      fmt.Fprintf(w, "\t%c", peaks.Strand[i])
    }
    if peaks.HasNarrowPeakFields() {
      fmt.Fprintf(w, "\t%s", strconv.FormatFloat(peaks.SigValues [i], 'g', -1, 64))
      fmt.Fprintf(w, "\t%s", strconv.FormatFloat(peaks.LogPvalues[i], 'g', -1, 64))
      fmt.Fprintf(w, "\t%s", strconv.FormatFloat(peaks.LogQvalues[i], 'g', -1, 64))
      fmt.Fprintf(w, "\t%d", peaks.Summits[i])
    }
    if ok[i] {
      fmt.Fprintf(w, "\t%s", names[i])
      fmt.Fprintf(w, "\t%d", dists[i])
    } else {
      fmt.Fprintf(w, "\t.")
      fmt.Fprintf(w, "\t.")
    }
    if promoter != nil {
      if promoter[i] {
        fmt.Fprintf(w, "\t1")
      } else {
        fmt.Fprintf(w, "\t0")
      }
    }
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

func exportTable(config Config, filename string, peaks Peaks, names []string, dists []int, ok, promoter []bool) {
  PrintStderr(config, 1, "Exporting table to `%s'... ", filename)
  f, err := os.Create(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  defer f.Close()

  if err := writeTable(f, peaks, names, dists, ok, promoter); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func annotateTSS(config Config, filenameOut, filenameIn string) {
  genes := importGenes(config)
  peaks := importPeaks(config, filenameIn)

  names, dists, ok := annotatePeaks(config, peaks, genes)

  var promoter []bool
  if config.Promoter {
    PrintStderr(config, 1, "Classifying peaks by promoter overlap... ")
    promoter = PromoterOverlap(peaks, genes, config.Offset5, config.Offset3)
    PrintStderr(config, 1, "done\n")
  }
  exportTable(config, filenameOut, peaks, names, dists, ok, promoter)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optGTF        := options. StringLong("gtf",              0 , "",           "gene annotation in GTF format")
  optGTFFeature := options. StringLong("gtf-feature",      0 , "transcript", "GTF feature type to keep [default: transcript]")
  optGenes      := options. StringLong("genes",            0 , "",           "gene annotation as UCSC text dump with columns "   +
                                                                             "name, seqname, strand, txStart, txEnd, cdsStart, " +
                                                                             "and cdsEnd")
  optUCSC       := options. StringLong("ucsc",             0 , "",           "import gene annotation from the UCSC MySQL "       +
                                                                             "server, e.g. hg38:refGene")
  optGenome     := options. StringLong("genome",           0 , "",           "file with chromosome sizes; peaks on other "       +
                                                                             "chromosomes are dropped")
  optPromoter   := options. StringLong("promoter-region",  0 , "",           "classify peaks by promoter overlap; the promoter " +
                                                                             "region is given as 5'-offset:3'-offset around "    +
                                                                             "the TSS, e.g. 1000:200")
  optThreads    := options.    IntLong("threads",         't', 1,            "number of threads [default: 1]")
  optStatus     := options.   BoolLong("status",           0 ,               "show status bar")
  optHelp       := options.   BoolLong("help",            'h',               "print help")
  optVerbose    := options.CounterLong("verbose",         'v',               "be verbose")

  options.SetParameters("<OUTPUT.table> <INPUT.bed|INPUT.narrowPeak>\n")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.GTF        = *optGTF
  config.GTFFeature = *optGTFFeature
  config.GenesFile  = *optGenes
  config.UCSC       = *optUCSC
  config.GenomeFile = *optGenome
  config.Threads    = *optThreads
  config.Status     = *optStatus
  config.Verbose    = *optVerbose

  if config.Threads < 1 {
    config.Threads = 1
  }
  // exactly one annotation source must be given
  sources := 0
  if config.GTF       != "" { sources++ }
  if config.GenesFile != "" { sources++ }
  if config.UCSC      != "" { sources++ }
  if sources != 1 {
    log.Fatal("please specify exactly one annotation source (--gtf, --genes, or --ucsc)")
  }
  if *optPromoter != "" {
    fields := strings.Split(*optPromoter, ":")
    if len(fields) != 2 {
      log.Fatalf("parsing promoter region `%s' failed", *optPromoter)
    }
    t1, err := strconv.ParseInt(fields[0], 10, 64)
    if err != nil {
      log.Fatalf("parsing promoter region `%s' failed: %v", *optPromoter, err)
    }
    t2, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      log.Fatalf("parsing promoter region `%s' failed: %v", *optPromoter, err)
    }
    if t1 < 0 || t2 < 0 {
      log.Fatalf("parsing promoter region `%s' failed: offsets must be non-negative", *optPromoter)
    }
    config.Promoter = true
    config.Offset5  = int(t1)
    config.Offset3  = int(t2)
  }
  filenameOut := options.Args()[0]
  filenameIn  := options.Args()[1]

  annotateTSS(config, filenameOut, filenameIn)
}
