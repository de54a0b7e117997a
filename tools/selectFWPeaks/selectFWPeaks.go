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

import   "fmt"
import   "log"
import   "os"
import   "path/filepath"
import   "sort"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/atacpeaks"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  NormStrategy string
  WriteOutAll  string
  SavePlot     bool
  Verbose      int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importPeaks(config Config, filename string) Peaks {
  PrintStderr(config, 1, "Reading peaks from `%s'... ", filename)
  peaks, _, err := ImportPeakFile(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  return peaks
}

func exportPeaks(config Config, filename string, peaks Peaks) {
  PrintStderr(config, 1, "Exporting bed file to `%s'... ", filename)
  if err := peaks.ExportBed6(filename, false); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* normalization plot
 * -------------------------------------------------------------------------- */

type xySort plotter.XYs

func (xy xySort) Len() int {
  return len(xy)
}

func (xy xySort) Less(i, j int) bool {
  return xy[i].X < xy[j].X
}

func (xy xySort) Swap(i, j int) {
  xy[i], xy[j] = xy[j], xy[i]
}

func rawScores(peaks Peaks, field ScoreField) []float64 {
  if field == ScoreFieldLogQval {
    return peaks.LogQvalues
  }
  return peaks.Scores
}

func normalizationXYs(peaks Peaks, field ScoreField) plotter.XYs {
  scores := rawScores(peaks, field)

  xy := make(plotter.XYs, peaks.Length())
  for i := 0; i < peaks.Length(); i++ {
    xy[i].X = scores[i]
    xy[i].Y = peaks.NormScores[i]
  }
  sort.Sort(xySort(xy))

  return xy
}

func saveNormalizationPlot(config Config, filename string, labels []string, data []plotter.XYs) {
  basename := strings.TrimSuffix(filename, filepath.Ext(filename))
  filename  = fmt.Sprintf("%s.normalization.pdf", basename)

  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "raw score"
  p.Y.Label.Text = "normalized score"

  args := []interface{}{}
  for i := 0; i < len(labels); i++ {
    args = append(args, labels[i], data[i])
  }
  if err := plotutil.AddLines(p, args...); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote normalization plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func selectPeaks(config Config, filenameOut string, filenamesIn []string) {
  normalizer := NewNormalizer()

  if _, ok := normalizer[config.NormStrategy]; !ok {
    log.Fatalf("invalid normalization strategy `%s': valid strategies are %v",
      config.NormStrategy, normalizer.Strategies())
  }
  // resolve all file types before reading any input
  fields := make([]ScoreField, len(filenamesIn))
  for i, filename := range filenamesIn {
    field, err := ResolvePeakFileType(filename)
    if err != nil {
      log.Fatal(err)
    }
    fields[i] = field
  }
  peaks  := Peaks{}
  labels := []string{}
  data   := []plotter.XYs{}

  for i, filename := range filenamesIn {
    tmp := importPeaks(config, filename)

    PrintStderr(config, 1, "Normalizing scores of `%s' on column `%v'... ", filename, fields[i])
    tmp, err := normalizer.Normalize(config.NormStrategy, tmp, fields[i])
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")

    if config.SavePlot {
      labels = append(labels, filepath.Base(filename))
      data   = append(data,   normalizationXYs(tmp, fields[i]))
    }
    peaks = peaks.Append(tmp)
  }
  peaks = peaks.Sort()

  if config.WriteOutAll != "" {
    exportPeaks(config, config.WriteOutAll, peaks)
  }
  if config.SavePlot {
    saveNormalizationPlot(config, filenameOut, labels, data)
  }
  selected := peaks.SelectRepresentatives()

  fmt.Fprintf(os.Stderr, "Raw peaks: %d, Selected peaks: %d\n", peaks.Length(), selected.Length())

  exportPeaks(config, filenameOut, selected)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optNormStrategy := options. StringLong("norm-strategy",           'n', "map", "normalization strategy [gauss, map (default), none]")
  optWriteOutAll  := options. StringLong("write-out-all",           'w', "",    "write all normalized peaks to file")
  optSavePlot     := options.   BoolLong("save-normalization-plot",  0 ,        "save a raw versus normalized score plot")
  optHelp         := options.   BoolLong("help",                    'h',        "print help")
  optVerbose      := options.CounterLong("verbose",                 'v',        "be verbose")

  options.SetParameters("<OUTPUT.bed> <INPUT.bed|INPUT.narrowPeak...>\n")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.NormStrategy = *optNormStrategy
  config.WriteOutAll  = *optWriteOutAll
  config.SavePlot     = *optSavePlot
  config.Verbose      = *optVerbose

  filenameOut := options.Args()[0]
  filenamesIn := options.Args()[1:]

  selectPeaks(config, filenameOut, filenamesIn)
}
