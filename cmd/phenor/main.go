package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
	"github.com/rs/zerolog"
	"github.com/scelmendorf/phenor"
	"github.com/scelmendorf/phenor/forcing"
)

// phenor batch runner: evaluates a list of (model, parameter vector) draws
// against one gob'd forcing set and writes a DOY vector per draw. The run
// file is CSV, one draw per line: model,par1,par2,...

func main() {
	frcfp := flag.String("frc", "", "forcing gob file")
	runfp := flag.String("run", "", "run file (csv: model,par1,par2,...)")
	outdir := flag.String("out", ".", "output directory")
	nwrkrs := flag.Int("w", 0, "workers per evaluation (0 = NumCPU)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	frc, err := forcing.LoadGob(*frcfp)
	if err != nil {
		logger.Fatal().Err(err).Str("frc", *frcfp).Msg("forcing load failed")
	}
	nd, ns := frc.Dims()
	logger.Info().Int("days", nd).Int("sites", ns).Msg("forcing loaded")

	lns, err := mmio.ReadTextLines(*runfp)
	if err != nil {
		logger.Fatal().Err(err).Str("run", *runfp).Msg("run file load failed")
	}
	mmio.MakeDir(*outdir)

	tt := mmio.NewTimer()
	uiprogress.Start()
	bar := uiprogress.AddBar(len(lns)).AppendCompleted().PrependElapsed()
	for i, ln := range lns {
		bar.Incr()
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 {
			continue
		}
		model, par, err := parseRun(ln)
		if err != nil {
			logger.Error().Err(err).Int("line", i+1).Msg("skipping draw")
			continue
		}
		doys, err := phenor.EvaluateConcurrent(model, par, frc, *nwrkrs)
		if err != nil {
			logger.Error().Err(err).Int("line", i+1).Str("model", model).Msg("evaluation failed")
			continue
		}
		mmio.WriteFloats(fmt.Sprintf("%s/%s.%d.doy.bin", *outdir, model, i), doys)
		if frc.TransitionDates != nil {
			s := phenor.Skill(frc.TransitionDates, doys)
			logger.Info().Str("model", model).Int("n", s.N).
				Float64("rmse", s.RMSE).Float64("nse", s.NSE).Float64("bias", s.Bias).
				Msg("scored")
		}
	}
	uiprogress.Stop()
	tt.Lap("batch complete")
}

func parseRun(ln string) (string, []float64, error) {
	ss := strings.Split(ln, ",")
	model := strings.TrimSpace(ss[0])
	np, ok := phenor.Arity(model)
	if !ok {
		return "", nil, fmt.Errorf("unknown model %q", model)
	}
	if len(ss)-1 != np {
		return "", nil, fmt.Errorf("%s expects %d parameters, got %d", model, np, len(ss)-1)
	}
	par := make([]float64, np)
	for j := range par {
		v, err := strconv.ParseFloat(strings.TrimSpace(ss[j+1]), 64)
		if err != nil {
			return "", nil, fmt.Errorf("parameter %d: %v", j+1, err)
		}
		par[j] = v
	}
	return model, par, nil
}
